package utils

import (
	"proacolhe-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	t.Run("Keeps Accented Letters", func(t *testing.T) {
		assert.Equal(t, "João da Conceição", SanitizeName("João da Conceição"))
	})

	t.Run("Drops Digits And Symbols", func(t *testing.T) {
		assert.Equal(t, "Maria Silva", SanitizeName("  Maria 2 Silva!!  "), "digits and symbols should be removed")
	})

	t.Run("Empty Input", func(t *testing.T) {
		assert.Equal(t, "", SanitizeName("123"))
	})
}

func TestSanitizeSusNumber(t *testing.T) {
	t.Run("Removes Formatting", func(t *testing.T) {
		assert.Equal(t, "898001160660005", SanitizeSusNumber("898 0011 6066 0005"))
	})

	t.Run("Truncates To Fifteen Digits", func(t *testing.T) {
		assert.Equal(t, "123456789012345", SanitizeSusNumber("12345678901234567890"))
	})
}

func TestSanitizeCreateStaffRequest(t *testing.T) {
	request := &requests.CreateStaff{
		Name:      " Ana  Paula 3 ",
		SusNumber: "700.000.000",
		Role:      " Doctor ",
		Username:  "  ana.paula ",
		Password:  " Senha@1 ",
	}

	SanitizeCreateStaffRequest(request)

	assert.Equal(t, "Ana Paula", request.Name)
	assert.Equal(t, "700000000", request.SusNumber)
	assert.Equal(t, "doctor", request.Role)
	assert.Equal(t, "ana.paula", request.Username)
	assert.Equal(t, " Senha@1 ", request.Password, "password must never be altered")
}

func TestSanitizeEvaluateProtocolRequest(t *testing.T) {
	t.Run("Normalizes Nested Blocks", func(t *testing.T) {
		request := &requests.EvaluateProtocol{
			Pathway:    " Congenita ",
			Congenital: &requests.CongenitalProtocol{PrincipalCID: " a50.4 "},
			Acquired:   &requests.AcquiredProtocol{Stage: " TARDIA"},
		}

		SanitizeEvaluateProtocolRequest(request)

		assert.Equal(t, "congenita", request.Pathway)
		assert.Equal(t, "A50.4", request.Congenital.PrincipalCID)
		assert.Equal(t, "tardia", request.Acquired.Stage)
	})

	t.Run("Nil Blocks", func(t *testing.T) {
		request := &requests.EvaluateProtocol{Pathway: "adquirida"}
		assert.NotPanics(t, func() { SanitizeEvaluateProtocolRequest(request) })
	})
}
