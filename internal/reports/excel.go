package reports

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// excelizeWriter реализация ExcelWriter поверх excelize
type excelizeWriter struct {
	file         *excelize.File
	currentSheet string
	currentRow   int
}

// NewExcelizeWriter создает новый writer для xlsx отчетов
func NewExcelizeWriter() ExcelWriter {
	return &excelizeWriter{
		file: excelize.NewFile(),
	}
}

// AddSheet добавляет новый лист. Имя обрезается до лимита Excel в 31 символ.
func (w *excelizeWriter) AddSheet(name string) error {
	if len(name) > 31 {
		name = name[:31]
	}

	if w.currentSheet == "" {
		// первый лист: переименовываем дефолтный Sheet1
		w.file.SetSheetName("Sheet1", name)
	} else {
		if _, err := w.file.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	w.currentSheet = name
	w.currentRow = 1
	return nil
}

// WriteHeader записывает строку заголовков жирным шрифтом
func (w *excelizeWriter) WriteHeader(columns []string) error {
	if w.currentSheet == "" {
		return fmt.Errorf("no active sheet")
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, w.currentRow)
		if err != nil {
			return err
		}
		if err := w.file.SetCellValue(w.currentSheet, cell, col); err != nil {
			return err
		}
	}

	style, err := w.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		startCell, _ := excelize.CoordinatesToCellName(1, w.currentRow)
		endCell, _ := excelize.CoordinatesToCellName(len(columns), w.currentRow)
		_ = w.file.SetCellStyle(w.currentSheet, startCell, endCell, style)
	}

	w.currentRow++
	return nil
}

// WriteRow записывает строку данных на текущий лист
func (w *excelizeWriter) WriteRow(row []interface{}) error {
	if w.currentSheet == "" {
		return fmt.Errorf("no active sheet")
	}

	for i, val := range row {
		cell, err := excelize.CoordinatesToCellName(i+1, w.currentRow)
		if err != nil {
			return err
		}
		if err := w.file.SetCellValue(w.currentSheet, cell, val); err != nil {
			return err
		}
	}

	w.currentRow++
	return nil
}

// Save записывает готовый файл в writer
func (w *excelizeWriter) Save(wr io.Writer) error {
	return w.file.Write(wr)
}

// Close освобождает ресурсы
func (w *excelizeWriter) Close() error {
	return w.file.Close()
}
