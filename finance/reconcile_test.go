package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcileSettled(t *testing.T) {
	s := Reconcile(dec("180"), dec("100"), dec("80"))
	assert.True(t, s.Outstanding.IsZero())
	assert.True(t, s.IsSettled)
}

func TestReconcileOutstanding(t *testing.T) {
	s := Reconcile(dec("180"), dec("100"), dec("0"))
	assert.True(t, s.Outstanding.Equal(dec("80")))
	assert.False(t, s.IsSettled)
}

func TestReconcileOverpaid(t *testing.T) {
	// an overpayment is still unsettled, with a negative balance
	s := Reconcile(dec("100"), dec("120"), dec("0"))
	assert.True(t, s.Outstanding.Equal(dec("-20")))
	assert.False(t, s.IsSettled)
}

func TestReconcileZeroInvoice(t *testing.T) {
	s := Reconcile(dec("0"), dec("0"), dec("0"))
	assert.True(t, s.IsSettled)
}
