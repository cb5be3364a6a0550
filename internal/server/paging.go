package server

import (
	"net/http"
	"strconv"

	"github.com/enfash/PrintSwift-sub000/internal/domain"
	"github.com/enfash/PrintSwift-sub000/pkg/errcodes"
)

// paging читает limit и offset из query; отсутствующие значения равны нулю,
// границы проверяет сервис.
func paging(r *http.Request) (limit, offset int, err error) {
	if limit, err = queryInt(r, "limit"); err != nil {
		return 0, 0, err
	}

	if offset, err = queryInt(r, "offset"); err != nil {
		return 0, 0, err
	}

	return limit, offset, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewInvalidInputError(errcodes.InvalidPaging, "%s must be an integer, got %q", name, raw)
	}

	return n, nil
}
