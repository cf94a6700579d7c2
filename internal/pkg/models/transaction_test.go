package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionStatus(t *testing.T) {
	for _, valid := range []string{"pending", "completed", "failed"} {
		status, err := ParseTransactionStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, TransactionStatus(valid), status)
	}

	_, err := ParseTransactionStatus("exploded")
	require.Error(t, err)
	assert.Equal(t, "Invalid status: exploded", err.Error())

	// Statuses are case sensitive.
	_, err = ParseTransactionStatus("Completed")
	require.Error(t, err)
}

func TestRawRecordEncodeIsDeterministic(t *testing.T) {
	raw := RawRecord{"b": "2", "a": "1", "c": "3"}

	assert.Equal(t, `{"a":"1","b":"2","c":"3"}`, raw.Encode())
	assert.Equal(t, raw.Encode(), raw.Encode())
}
