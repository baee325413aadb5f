package utils

import (
	"errors"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"time"

	"supplierhub/internal/utils/apierror"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/labstack/gommon/log"
)

var (
	invalidPwd   *types.InvalidPasswordException
	userExists   *types.UsernameExistsException
	userNotFound *types.UserNotFoundException
	invalidParam *types.InvalidParameterException
)

func FormatEpoch(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(time.RFC3339)
}

func NowUTC() int64 {
	return time.Now().
		UTC().
		UnixMilli()
}

// DateStamp is the YYYY-MM-DD form of the current UTC date, used on the
// agreement document and its filename.
func DateStamp() string {
	return time.Now().UTC().Format("2006-01-02")
}

func CheckFileExt(fileName string, valid []string) (string, bool) {
	ext := filepath.Ext(fileName)
	if ext == "" {
		return "", false
	}
	return ext, slices.Contains(valid, strings.ToLower(ext[1:]))
}

// MapCognitoError translates identity-provider failures into the API
// error the signup flow answers with. ErrAccountExists callers handle
// separately, everything unmapped is a 500.
func MapCognitoError(err error) apierror.ErrorResponse {
	switch {
	case errors.As(err, &invalidPwd):
		return apierror.IDPInvalidPasswordError
	case errors.As(err, &userExists):
		return apierror.IDPExistingEmailError
	case errors.As(err, &userNotFound):
		return apierror.IDPUserNotFoundError
	case errors.As(err, &invalidParam):
		return apierror.IDPInvalidParameterError
	default:
		// Log the original underlying error for debugging purposes
		log.Errorf("unmapped cognito error: %v", err)
		return apierror.InternalServerError
	}
}

// IsCognitoUserExists reports whether err is the identity provider's
// duplicate-username rejection, which the signup flow maps to the
// "account already exists" redirect.
func IsCognitoUserExists(err error) bool {
	return errors.As(err, &userExists)
}

func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Struct:
			Sanitize(field.Addr().Interface())

		case reflect.Ptr:
			if field.IsNil() {
				continue
			}
			switch field.Elem().Kind() {
			case reflect.String:
				field.Elem().SetString(sanitizeString(field.Elem().String()))
			case reflect.Struct:
				Sanitize(field.Interface())
			}

		case reflect.Slice:
			switch field.Type().Elem().Kind() {
			case reflect.String:
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			case reflect.Ptr:
				for j := 0; j < field.Len(); j++ {
					el := field.Index(j)
					if !el.IsNil() && el.Elem().Kind() == reflect.Struct {
						Sanitize(el.Interface())
					}
				}
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
