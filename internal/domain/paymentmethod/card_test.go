package paymentmethod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awaleed99/bite-back0/internal/httperr"
)

func TestLastFour(t *testing.T) {
	got, err := LastFour("4242 4242 4242 4242")
	require.NoError(t, err)
	assert.Equal(t, "4242", got)

	_, err = LastFour("12")
	assert.True(t, httperr.IsBusiness(err, "invalid_card_number"))

	_, err = LastFour("4242-4242-4242-4242")
	assert.True(t, httperr.IsBusiness(err, "invalid_card_number"))
}
