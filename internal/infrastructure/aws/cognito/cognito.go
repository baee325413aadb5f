package cognitoclient

import (
	"context"

	appconfig "supplierhub/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	cognito "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// Account is the payload for supplier account creation on the identity
// provider.
type Account struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CognitoInterface interface {
	SignUp(ctx context.Context, account *Account) (string, error)
	DeleteAccount(ctx context.Context, email string) error
}

type cognitoClient struct {
	cognitoClient *cognito.Client
	appClientId   string
	userPoolId    string
}

func InitCognitoClient() (CognitoInterface, error) {
	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(appconfig.Cfg.CognitoRegion))
	if err != nil {
		return nil, err
	}

	return &cognitoClient{
		cognitoClient: cognito.NewFromConfig(cfg),
		appClientId:   appconfig.Cfg.CognitoClientID,
		userPoolId:    appconfig.Cfg.CognitoPoolID,
	}, nil
}

// SignUp creates the supplier's account row on Cognito and returns its
// "sub" (the UUID).
func (c *cognitoClient) SignUp(ctx context.Context, account *Account) (string, error) {
	input := &cognito.SignUpInput{
		ClientId: aws.String(c.appClientId),
		Username: aws.String(account.Email),
		Password: aws.String(account.Password),
		UserAttributes: []types.AttributeType{
			{
				Name:  aws.String("email"),
				Value: aws.String(account.Email),
			},
		},
	}

	out, err := c.cognitoClient.SignUp(ctx, input)
	if err != nil {
		return "", err
	}
	return *out.UserSub, nil
}

// DeleteAccount removes a just-created account again. It is the revert
// path when the local database write after a signup fails.
func (c *cognitoClient) DeleteAccount(ctx context.Context, email string) error {
	_, err := c.cognitoClient.AdminDeleteUser(ctx, &cognito.AdminDeleteUserInput{
		UserPoolId: aws.String(c.userPoolId),
		Username:   aws.String(email),
	})
	return err
}
