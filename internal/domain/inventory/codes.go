package inventory

import (
	"fmt"
	"strconv"
	"strings"
)

// NextCode devuelve el siguiente código secuencial para un prefijo.
// lastCode debe ser el mayor código existente con ese prefijo ("" si no hay
// ninguno). El sufijo numérico va con padding a 3 dígitos y crece de forma
// natural a partir de 999 (AB999 -> AB1000).
//
// Un lastCode que no sea prefijo + sufijo numérico es un error: inventar un
// código desde cero podría colisionar con uno ya emitido.
func NextCode(prefix, lastCode string) (string, error) {
	if lastCode == "" {
		return prefix + "001", nil
	}
	suffix := strings.TrimPrefix(lastCode, prefix)
	if suffix == lastCode {
		return "", fmt.Errorf("código %q no lleva el prefijo %q", lastCode, prefix)
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 0 {
		return "", fmt.Errorf("código %q: sufijo %q no es numérico", lastCode, suffix)
	}
	return fmt.Sprintf("%s%03d", prefix, n+1), nil
}
