package utils

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/responses"
	"orca-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildPaginationResponse(total, page, pageSize int, baseURL string) *responses.Pagination {
	pagination := &responses.Pagination{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}

	if page*pageSize < total {
		pagination.NextURL = fmt.Sprintf(constvars.AppPaginationUrlFormat, baseURL, page+1, pageSize)
	}
	if page > 1 {
		pagination.PrevURL = fmt.Sprintf(constvars.AppPaginationUrlFormat, baseURL, page-1, pageSize)
	}

	return pagination
}

// BuildOpenPaginationResponse is used when the API does not report a total.
// A full page is taken as a hint that another page exists.
func BuildOpenPaginationResponse(itemCount, page, pageSize int, baseURL string) *responses.Pagination {
	pagination := &responses.Pagination{
		Page:     page,
		PageSize: pageSize,
	}

	if itemCount >= pageSize {
		pagination.NextURL = fmt.Sprintf(constvars.AppPaginationUrlFormat, baseURL, page+1, pageSize)
	}
	if page > 1 {
		pagination.PrevURL = fmt.Sprintf(constvars.AppPaginationUrlFormat, baseURL, page-1, pageSize)
	}

	return pagination
}

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	writeJSON(w, code, responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func BuildSuccessResponseWithPagination(w http.ResponseWriter, code int, message string, pagination *responses.Pagination, data interface{}) {
	writeJSON(w, code, responses.ResponseDTO{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	})
}

// BuildSuccessResponseWithToast attaches a flash notification consumed from
// the session. A nil toast is omitted from the body.
func BuildSuccessResponseWithToast(w http.ResponseWriter, code int, message string, toast *responses.Toast, data interface{}) {
	writeJSON(w, code, responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
		Toast:   toast,
	})
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code, response := buildErrorBody(log, err)
	writeJSON(w, code, response)
}

// BuildPlainTextErrorResponse is used by download endpoints where the browser
// expects a file and a JSON envelope would be saved to disk.
func BuildPlainTextErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code, response := buildErrorBody(log, err)
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextPlainCharsetUTF8)
	w.WriteHeader(code)
	io.WriteString(w, response.ClientMessage)
}

func BuildRedirectResponse(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, constvars.StatusSeeOther)
}

func BuildFileResponse(w http.ResponseWriter, contentType, fileName string, content []byte) {
	w.Header().Set(constvars.HeaderContentType, contentType)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set(constvars.HeaderCacheControl, "no-store")
	w.WriteHeader(constvars.StatusOK)
	w.Write(content)
}

// BuildFileStreamResponse copies body to the client as an attachment. The
// status is already sent when copying starts, so a failed copy is only
// returned to the caller.
func BuildFileStreamResponse(w http.ResponseWriter, contentType, fileName string, body io.Reader) (int64, error) {
	w.Header().Set(constvars.HeaderContentType, contentType)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set(constvars.HeaderCacheControl, "no-store")
	w.WriteHeader(constvars.StatusOK)
	return io.Copy(w, body)
}

func buildErrorBody(log *zap.Logger, err error) (int, exceptions.CustomError) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			log.Error(customErr.DevMessage,
				zap.String("file", location.File),
				zap.Int("line", location.Line),
				zap.String("function_name", location.FunctionName),
			)
		}
	} else if err != nil {
		log.Error(err.Error())
	}

	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}
	if customErr != nil {
		response.Fields = customErr.Fields
	}

	appEnvironment := GetEnvString("APP_ENV", constvars.AppEnvDevelopment)
	if customErr != nil && appEnvironment != constvars.AppEnvProduction {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}
	return code, response
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
