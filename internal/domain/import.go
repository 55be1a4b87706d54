package domain

import (
	"path/filepath"
	"strings"
)

// ImportFormat — формат входной таблицы.
type ImportFormat string

const (
	ImportAuto ImportFormat = "auto"
	ImportXLSX ImportFormat = "xlsx"
	ImportCSV  ImportFormat = "csv"
)

// ImportFormatFromName — формат по расширению файла; неизвестное расширение → auto.
func ImportFormatFromName(name string) ImportFormat {
	switch strings.ToLower(filepath.Ext(strings.TrimSpace(name))) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return ImportXLSX
	case ".csv", ".txt":
		return ImportCSV
	default:
		return ImportAuto
	}
}

// ParseImportFormat — разбор явно указанного формата; пустое и неизвестное значение → auto.
func ParseImportFormat(raw string) ImportFormat {
	switch ImportFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case ImportXLSX:
		return ImportXLSX
	case ImportCSV:
		return ImportCSV
	default:
		return ImportAuto
	}
}

// ImportWarning — ячейка, которую не удалось привести к нужному типу.
// Row — номер строки в исходной таблице (с 1, включая заголовок).
// Value — исходный текст ячейки; в заказе на его месте ноль.
type ImportWarning struct {
	Row     int    `json:"row"`
	OrderID string `json:"order_id"`
	Column  string `json:"column"`
	Value   string `json:"value"`
}

// ImportResult — результат разбора таблицы.
type ImportResult struct {
	Orders   []Order
	Warnings []ImportWarning
}

// ImportOutcome — результат применённого импорта: новое содержимое хранилища уже на месте,
// представление пересчитано один раз.
type ImportOutcome struct {
	Imported int             `json:"imported"`
	Warnings []ImportWarning `json:"warnings"`
	Spec     QuerySpec       `json:"spec"`
	View     View            `json:"view"`
}
