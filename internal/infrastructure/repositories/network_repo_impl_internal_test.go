package repositories

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, isUniqueViolation(errors.New("UNIQUE constraint failed: networks.chain_id")))
	assert.True(t, isUniqueViolation(errors.New(`duplicate key value violates unique constraint "idx_networks_chain_id"`)))

	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(gorm.ErrRecordNotFound))
}

func TestEncodeRPCURLs(t *testing.T) {
	assert.Equal(t, "[]", encodeRPCURLs(nil))
	assert.Equal(t, "[]", encodeRPCURLs([]string{}))
	assert.Equal(t, `["https://a","https://b"]`, encodeRPCURLs([]string{"https://a", "https://b"}))
}

func TestDecodeRPCURLs(t *testing.T) {
	assert.Equal(t, []string{}, decodeRPCURLs(""))
	assert.Equal(t, []string{}, decodeRPCURLs("null"))
	assert.Equal(t, []string{}, decodeRPCURLs("{broken"))
	assert.Equal(t, []string{}, decodeRPCURLs(`{"not":"a-list"}`))
	assert.Equal(t, []string{"https://a", "https://b"}, decodeRPCURLs(`["https://a","https://b"]`))
}
