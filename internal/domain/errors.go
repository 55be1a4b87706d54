package domain

import "errors"

var (
	// ErrImportRead — байты файла не удалось прочитать полностью.
	ErrImportRead = errors.New("import read failure")

	// ErrImportParse — байты прочитаны, но не распознаны как таблица или в таблице нет строк данных.
	ErrImportParse = errors.New("import parse failure")
)
