package utils

import (
	"dentaflow-service/internal/pkg/constvars"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/exceptions"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

func BuildPaginationRequest(r *http.Request) requests.Pagination {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page <= 0 {
		page = constvars.DefaultPage
	}

	pageSize, err := strconv.Atoi(r.URL.Query().Get("page_size"))
	if err != nil || pageSize <= 0 {
		pageSize = constvars.DefaultPageSize
	}
	if pageSize > constvars.MaxPageSize {
		pageSize = constvars.MaxPageSize
	}

	return requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

func ExtractBearerToken(r *http.Request) string {
	header := r.Header.Get(constvars.HeaderAuthorization)
	if !strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix))
}

func IsValidUUID(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}

// ParseOptionalDate parses a YYYY-MM-DD value. Blank input yields nil.
func ParseOptionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	parsed, err := time.Parse(constvars.TimeFormatDate, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// ReadFormFile opens a multipart file field and detects its content type from
// the file head. The caller closes the returned file.
func ReadFormFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader, string, error) {
	if err := r.ParseMultipartForm(constvars.MultipartMaxMemory); err != nil {
		return nil, nil, "", exceptions.ErrCannotParseMultipartForm(err)
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil, "", exceptions.ErrCannotParseMultipartForm(err)
	}

	contentType, err := SniffContentType(file)
	if err != nil {
		file.Close()
		return nil, nil, "", exceptions.ErrCannotParseMultipartForm(err)
	}
	return file, header, contentType, nil
}
