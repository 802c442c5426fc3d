package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnString(t *testing.T) {
	assert.Equal(t,
		"postgres://postgres@localhost:5432/trainlytics",
		connString(NewDBPoolParams{DBHost: "localhost", DBPort: "5432", DBName: "trainlytics"}),
	)
	assert.Equal(t,
		"postgres://gateway:s3cr%2Ft@pg:6432/trainlytics",
		connString(NewDBPoolParams{DBHost: "pg", DBPort: "6432", DBName: "trainlytics", DBUser: "gateway", DBPassword: "s3cr/t"}),
	)
}
