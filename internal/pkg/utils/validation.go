package utils

import (
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/requests"
	"orca-service/internal/pkg/exceptions"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	objectIDRegex         = regexp.MustCompile(constvars.RegexObjectID)
	tidepoolUserIDRegex   = regexp.MustCompile(constvars.RegexTidepoolUserID)
	shareCodeRegex        = regexp.MustCompile(constvars.RegexClinicShareCode)
	prescriptionCodeRegex = regexp.MustCompile(constvars.RegexPrescriptionCode)
	emailRegex            = regexp.MustCompile(constvars.RegexEmail)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(clientFieldName)
	validate.RegisterValidation("object_id", validateObjectID)
	validate.RegisterValidation("tidepool_id", validateTidepoolUserID)
	validate.RegisterValidation("share_code", validateShareCode)
	validate.RegisterValidation("bg_units", validateBGUnits)
	validate.RegisterValidation("export_format", validateExportFormat)
	validate.RegisterValidation("clinician_role", validateClinicianRole)
	validate.RegisterStructValidation(validateDataExportRange, requests.DataExport{})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateResponse checks a decoded API entity, or every element of a decoded
// list of entities.
func ValidateResponse(v interface{}) error {
	value := reflect.ValueOf(v)
	for value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}

	switch value.Kind() {
	case reflect.Struct:
		return validate.Struct(value.Interface())
	case reflect.Slice, reflect.Array:
		for i := 0; i < value.Len(); i++ {
			if err := ValidateResponse(value.Index(i).Interface()); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateUrlParamID checks a path id with a matcher such as IsObjectID.
func ValidateUrlParamID(value, paramName string, matches func(string) bool) error {
	if value == "" || !matches(value) {
		return exceptions.ErrURLParamIDValidation(nil, paramName)
	}
	return nil
}

func IsObjectID(value string) bool {
	return objectIDRegex.MatchString(value)
}

func IsTidepoolUserID(value string) bool {
	return tidepoolUserIDRegex.MatchString(value)
}

func IsClinicShareCode(value string) bool {
	return shareCodeRegex.MatchString(strings.ToUpper(value))
}

func IsPrescriptionAccessCode(value string) bool {
	return prescriptionCodeRegex.MatchString(strings.ToUpper(value))
}

func IsEmail(value string) bool {
	return emailRegex.MatchString(value)
}

// clientFieldName reports validation errors under the name the browser
// submitted: the form tag first, then the json tag.
func clientFieldName(field reflect.StructField) string {
	for _, tagName := range []string{"form", "json"} {
		name := strings.SplitN(field.Tag.Get(tagName), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return field.Name
}

func validateObjectID(fl validator.FieldLevel) bool {
	return IsObjectID(fl.Field().String())
}

func validateTidepoolUserID(fl validator.FieldLevel) bool {
	return IsTidepoolUserID(fl.Field().String())
}

func validateShareCode(fl validator.FieldLevel) bool {
	return IsClinicShareCode(fl.Field().String())
}

func validateBGUnits(fl validator.FieldLevel) bool {
	_, ok := NormalizeBGUnits(fl.Field().String())
	return ok
}

func validateExportFormat(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.ExportFormatJSON || value == constvars.ExportFormatXLSX
}

func validateClinicianRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.ClinicianRoleAdmin || value == constvars.ClinicianRoleMember
}

func validateDataExportRange(sl validator.StructLevel) {
	request := sl.Current().Interface().(requests.DataExport)
	if request.StartDate == "" || request.EndDate == "" {
		return
	}

	start, startErr := time.Parse(time.DateOnly, request.StartDate)
	end, endErr := time.Parse(time.DateOnly, request.EndDate)
	if startErr != nil || endErr != nil {
		return
	}
	if end.Before(start) {
		sl.ReportError(request.EndDate, constvars.URLQueryParamEndDate, "EndDate", "gtefield", constvars.URLQueryParamStartDate)
	}
}
