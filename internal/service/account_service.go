package service

import (
	"context"

	"supplierhub/internal/config"
	"supplierhub/internal/contract"
	"supplierhub/internal/domain/entity"
	cognitoclient "supplierhub/internal/infrastructure/aws/cognito"
	"supplierhub/internal/utils"
	"supplierhub/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type AccountRepository interface {
	FindBySupplierID(supplierID string) (*entity.SupplierAccount, error)
	ExistsByEmail(email string) (bool, error)
	Save(account *entity.SupplierAccount) error
}

// AccountService owns the supplier signup flow that precedes the
// wizard. A completed signup is recorded per supplier id so revisiting
// the onboarding link skips account creation.
type AccountService struct {
	Accounts AccountRepository
	Validate *validator.Validate
	Cognito  cognitoclient.CognitoInterface
}

func NewAccountService(accounts AccountRepository, validate *validator.Validate, cognito cognitoclient.CognitoInterface) *AccountService {
	return &AccountService{
		Accounts: accounts,
		Validate: validate,
		Cognito:  cognito,
	}
}

// Signup creates the supplier's account on the identity provider and
// records the completion flag. An account that already exists is not an
// error to the supplier: the response carries the login page URL.
func (a *AccountService) Signup(ctx context.Context, req *contract.SignupRequest) (*contract.SignupResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := a.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	account, err := a.Accounts.FindBySupplierID(req.SupplierID)
	if err != nil {
		log.Errorf("failed to fetch account for supplier %s: %v", req.SupplierID, err)
		return nil, apierror.InternalServerError
	}

	if account != nil && account.SignupCompleted {
		return loginRedirect(req.SupplierID), nil
	}

	found, err := a.Accounts.ExistsByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to check if account exists: %v", err)
		return nil, apierror.InternalServerError
	}
	if found {
		return loginRedirect(req.SupplierID), nil
	}

	sub, err := a.Cognito.SignUp(ctx, &cognitoclient.Account{Email: req.Email, Password: req.Password})
	if err != nil {
		if utils.IsCognitoUserExists(err) {
			return loginRedirect(req.SupplierID), nil
		}
		apierr := utils.MapCognitoError(err)
		return nil, apierr
	}

	now := utils.NowUTC()
	if account == nil {
		account = &entity.SupplierAccount{
			SupplierID: req.SupplierID,
			CreatedAt:  now,
		}
	}
	account.SubUUID = sub
	account.Email = req.Email
	account.SignupCompleted = true
	account.UpdatedAt = now

	if err := a.Accounts.Save(account); err != nil {
		// Roll the identity-provider account back so the supplier can
		// retry signup cleanly.
		if derr := a.Cognito.DeleteAccount(ctx, req.Email); derr != nil {
			log.Errorf("failed to revert cognito signup for %s: %v", req.Email, derr)
		}
		log.Errorf("failed to save account for supplier %s: %v", req.SupplierID, err)
		return nil, apierror.InternalServerError
	}

	return &contract.SignupResponse{
		SupplierID:      req.SupplierID,
		SignupCompleted: true,
	}, nil
}

// SignupStatus reports whether account creation already ran for the
// supplier, checked on every load of the onboarding link.
func (a *AccountService) SignupStatus(supplierID string) (*contract.SignupResponse, apierror.ErrorResponse) {
	account, err := a.Accounts.FindBySupplierID(supplierID)
	if err != nil {
		log.Errorf("failed to fetch account for supplier %s: %v", supplierID, err)
		return nil, apierror.InternalServerError
	}

	resp := &contract.SignupResponse{SupplierID: supplierID}
	if account != nil && account.SignupCompleted {
		resp.SignupCompleted = true
	}
	return resp, nil
}

func loginRedirect(supplierID string) *contract.SignupResponse {
	return &contract.SignupResponse{
		SupplierID:      supplierID,
		SignupCompleted: true,
		LoginURL:        config.Cfg.LoginPageURL,
	}
}
