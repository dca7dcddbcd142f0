// Package utils reúne os helpers de exibição: datas resumidas e os labels
// dos códigos enumerados. Nada aqui toca registros persistidos.
package utils

import (
	"fmt"
	"time"

	"protechub/models"
)

var mesesAbreviados = [...]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// DataResumida formata uma data no estilo "05 Mar 2026".
func DataResumida(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), mesesAbreviados[t.Month()-1], t.Year())
}

func label(m map[string]string, code string) string {
	if l, ok := m[code]; ok {
		return l
	}
	return code
}

func CategoriaLabel(code string) string { return label(models.CategoriaLabels, code) }
func CargoLabel(code string) string     { return label(models.CargoLabels, code) }
func TipoLabel(code string) string      { return label(models.TipoLabels, code) }
func StatusLabel(code string) string    { return label(models.StatusLabels, code) }
