package repository

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
