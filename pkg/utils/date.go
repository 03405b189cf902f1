package utils

import (
	"strconv"
	"strings"
	"time"
)

// EpochSentinel é a data retornada para registros com data ausente ou
// inválida. Registros malformados ordenam de forma determinística em vez de
// interromper o processamento.
var EpochSentinel = time.Unix(0, 0).UTC()

// ParseBRDate converte uma data no formato "dd/mm/aaaa" para time.Time.
// Entradas vazias ou malformadas retornam EpochSentinel, nunca erro.
func ParseBRDate(dateStr string) time.Time {
	parts := strings.Split(dateStr, "/")
	if len(parts) != 3 {
		return EpochSentinel
	}

	day, errDay := strconv.Atoi(parts[0])
	month, errMonth := strconv.Atoi(parts[1])
	year, errYear := strconv.Atoi(parts[2])
	if errDay != nil || errMonth != nil || errYear != nil {
		return EpochSentinel
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return EpochSentinel
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// MonthsBetween calcula a diferença em meses de calendário entre duas datas.
// Pode ser zero ou negativa quando o período não cobre um mês completo.
func MonthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

// SameMonthYear verifica se a data pertence ao mês/ano informados.
func SameMonthYear(date time.Time, month time.Month, year int) bool {
	return date.Month() == month && date.Year() == year
}
