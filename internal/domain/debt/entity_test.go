package debt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDebt(t *testing.T) {
	t.Run("cria dívida com saldo restante igual ao total", func(t *testing.T) {
		d, err := NewDebt("Maria Santos", 500.0, "compras do mês")
		require.NoError(t, err)

		assert.Equal(t, 500.0, d.TotalAmount)
		assert.Equal(t, 0.0, d.PaidAmount)
		assert.Equal(t, 500.0, d.Remaining)
		assert.False(t, d.IsSettled())
	})

	t.Run("rejeita nome vazio", func(t *testing.T) {
		_, err := NewDebt("", 100.0, "")
		assert.ErrorIs(t, err, ErrEmptyClientName)
	})

	t.Run("rejeita valor não positivo", func(t *testing.T) {
		_, err := NewDebt("Pedro", 0, "")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestApplyPayment(t *testing.T) {
	t.Run("atualiza valor pago e saldo restante", func(t *testing.T) {
		d, err := NewDebt("Maria Santos", 500.0, "")
		require.NoError(t, err)

		p, err := d.ApplyPayment(200.0, "primeiro pagamento")
		require.NoError(t, err)

		assert.Equal(t, 200.0, p.Amount)
		assert.Equal(t, d.ID, p.DebtID)
		assert.Equal(t, 200.0, d.PaidAmount)
		assert.Equal(t, 300.0, d.Remaining)
	})

	t.Run("rejeita pagamento acima do saldo restante", func(t *testing.T) {
		d, err := NewDebt("Maria Santos", 500.0, "")
		require.NoError(t, err)

		_, err = d.ApplyPayment(200.0, "")
		require.NoError(t, err)

		_, err = d.ApplyPayment(301.0, "")
		assert.ErrorIs(t, err, ErrAmountExceedsBalance)

		// A dívida permanece intacta após a rejeição
		assert.Equal(t, 200.0, d.PaidAmount)
		assert.Equal(t, 300.0, d.Remaining)
	})

	t.Run("rejeita pagamento não positivo", func(t *testing.T) {
		d, err := NewDebt("Maria Santos", 100.0, "")
		require.NoError(t, err)

		_, err = d.ApplyPayment(0, "")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("quitação total deixa a dívida paga", func(t *testing.T) {
		d, err := NewDebt("Pedro Oliveira", 250.0, "")
		require.NoError(t, err)

		_, err = d.ApplyPayment(250.0, "pagamento único")
		require.NoError(t, err)

		assert.True(t, d.IsSettled())
		assert.Equal(t, 0.0, d.Remaining)

		// Não aceita novos pagamentos depois de quitada
		_, err = d.ApplyPayment(1.0, "")
		assert.ErrorIs(t, err, ErrAmountExceedsBalance)
	})

	t.Run("pagamentos ficam em ordem decrescente", func(t *testing.T) {
		d, err := NewDebt("Maria Santos", 500.0, "")
		require.NoError(t, err)

		first, err := d.ApplyPayment(100.0, "primeiro")
		require.NoError(t, err)
		second, err := d.ApplyPayment(100.0, "segundo")
		require.NoError(t, err)

		require.Len(t, d.Payments, 2)
		assert.Equal(t, second.ID, d.Payments[0].ID)
		assert.Equal(t, first.ID, d.Payments[1].ID)
	})
}
