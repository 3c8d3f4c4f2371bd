package handlers

import (
	"net/url"
	"strconv"
)

// ParsePagination читает limit и offset из query, пустые значения дают 0
func ParsePagination(q url.Values) (limit, offset uint64, err error) {
	if v := q.Get("limit"); v != "" {
		if limit, err = strconv.ParseUint(v, 10, 64); err != nil {
			return 0, 0, err
		}
	}
	if v := q.Get("offset"); v != "" {
		if offset, err = strconv.ParseUint(v, 10, 64); err != nil {
			return 0, 0, err
		}
	}
	return limit, offset, nil
}

// ParseOptionalID читает необязательный int64 параметр
func ParseOptionalID(q url.Values, key string) (*int64, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
