package rut

import "strings"

// Largo mínimo del cuerpo para un RUT real. Cuerpos más cortos se rechazan
// aunque el dígito verificador calce (no existen RUT vigentes tan bajos).
const minBodyLen = 7

// Clean elimina puntos, guiones y cualquier carácter que no sea dígito o K/k.
// "12.345.678-5" -> "123456785".
func Clean(input string) string {
	var b strings.Builder
	for _, r := range input {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == 'K' || r == 'k':
			b.WriteByte('K')
		}
	}
	return b.String()
}

// Validate verifica el dígito verificador de un RUT chileno (algoritmo módulo 11).
// Acepta el RUT con o sin puntos/guión. Cuerpos de menos de 7 dígitos se
// consideran inválidos sin importar el checksum.
func Validate(input string) bool {
	value := Clean(input)
	if len(value) < 2 {
		return false
	}
	body := value[:len(value)-1]
	dv := value[len(value)-1]

	if len(body) < minBodyLen {
		return false
	}
	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return false
		}
	}
	return computeDV(body) == dv
}

// Format inserta separadores de miles en el cuerpo y agrega "-DV" en mayúscula.
// "123456785" -> "12.345.678-5". No valida: el llamador debe usar Validate aparte.
func Format(input string) string {
	value := Clean(input)
	if len(value) < 2 {
		return value
	}
	body := value[:len(value)-1]
	dv := strings.ToUpper(string(value[len(value)-1]))

	var b strings.Builder
	for i, c := range body {
		if i > 0 && (len(body)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}
	return b.String() + "-" + dv
}

// computeDV calcula el dígito verificador esperado para un cuerpo numérico.
// Recorre de derecha a izquierda con pesos cíclicos 2..7; 11->'0', 10->'K'.
func computeDV(body string) byte {
	sum := 0
	mult := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * mult
		if mult < 7 {
			mult++
		} else {
			mult = 2
		}
	}
	switch expected := 11 - (sum % 11); expected {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + expected)
	}
}
