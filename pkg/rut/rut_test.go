package rut_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prevenapp/inspecciones-api/pkg/rut"
)

// Vectores conocidos: 12345678 tiene DV 5 según módulo 11.
func TestValidate_VectorConocido(t *testing.T) {
	assert.True(t, rut.Validate("12345678-5"), "12345678-5 es un RUT válido")
	assert.False(t, rut.Validate("12345678-9"), "12345678-9 tiene DV incorrecto")
}

func TestValidate_AceptaFormatos(t *testing.T) {
	// El mismo RUT con y sin puntos/guión debe dar el mismo resultado.
	assert.True(t, rut.Validate("12.345.678-5"))
	assert.True(t, rut.Validate("123456785"))
	assert.True(t, rut.Validate(" 12.345.678-5 "))
}

func TestValidate_DigitoK(t *testing.T) {
	// 20.347.878 tiene DV K; debe aceptarse en mayúscula y minúscula.
	assert.True(t, rut.Validate("20347878-K"))
	assert.True(t, rut.Validate("20347878-k"))
}

// Decisión explícita: cuerpos de menos de 7 dígitos son inválidos aunque el
// checksum calce (no son RUT reales).
func TestValidate_CuerpoCorto(t *testing.T) {
	// 1-9: checksum correcto pero cuerpo de 1 dígito.
	assert.False(t, rut.Validate("1-9"))
	assert.False(t, rut.Validate("123456-0"))
}

func TestValidate_EntradasMalformadas(t *testing.T) {
	assert.False(t, rut.Validate(""))
	assert.False(t, rut.Validate("-"))
	assert.False(t, rut.Validate("K"))
	assert.False(t, rut.Validate("sin-numeros"))
}

func TestFormat_SeparadoresDeMiles(t *testing.T) {
	assert.Equal(t, "12.345.678-5", rut.Format("123456785"))
	assert.Equal(t, "12.345.678-5", rut.Format("12.345.678-5"))
	assert.Equal(t, "1.234.567-4", rut.Format("12345674"))
	assert.Equal(t, "20.347.878-K", rut.Format("20347878-k"), "el DV se normaliza a mayúscula")
}

func TestFormat_EntradaCorta(t *testing.T) {
	// Format no valida: cuerpos cortos igual se formatean.
	assert.Equal(t, "1-9", rut.Format("19"))
	assert.Equal(t, "", rut.Format(""))
	assert.Equal(t, "5", rut.Format("5"))
}

// Propiedad de ida y vuelta: validar el RUT formateado da el mismo veredicto
// que validar el original limpio.
func TestRoundTrip_FormatNoCambiaVeredicto(t *testing.T) {
	cases := []string{"12345678-5", "12345678-9", "20347878-K", "123456-0", "76086428-5"}
	for _, c := range cases {
		assert.Equal(t, rut.Validate(c), rut.Validate(rut.Format(c)), "veredicto estable para %s", c)
	}
}
