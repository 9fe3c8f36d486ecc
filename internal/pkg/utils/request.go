package utils

import (
	"mime"
	"net/http"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/requests"
	"orca-service/internal/pkg/exceptions"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"
)

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get(constvars.URLQueryParamPage)
	pageSizeStr := r.URL.Query().Get(constvars.URLQueryParamPageSize)

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = constvars.AppDefaultPage
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = constvars.AppDefaultPageSize
	}
	if pageSize > constvars.AppMaxPageSize {
		pageSize = constvars.AppMaxPageSize
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

func GetSearchQuery(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamSearch))
}

func IsJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get(constvars.HeaderContentType))
	return err == nil && mediaType == constvars.MIMEApplicationJSON
}

// ParseRequestBody decodes a JSON body or an HTML form into dst. Form fields
// are matched through the `form` struct tag.
func ParseRequestBody(r *http.Request, dst interface{}) error {
	if IsJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return exceptions.ErrCannotParseJSON(err)
		}
		return nil
	}

	if err := r.ParseForm(); err != nil {
		return exceptions.ErrCannotParseForm(err)
	}

	values := make(map[string]interface{}, len(r.PostForm))
	for key := range r.PostForm {
		value := strings.TrimSpace(r.PostForm.Get(key))
		// checkboxes submit "on" when ticked
		if value == "on" {
			value = "true"
		}
		values[key] = value
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "form",
		WeaklyTypedInput: true,
		Result:           dst,
	})
	if err != nil {
		return exceptions.ErrCannotParseForm(err)
	}
	if err := decoder.Decode(values); err != nil {
		return exceptions.ErrCannotParseForm(err)
	}
	return nil
}
