package export_settlement_report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	settlePeriod "github.com/arenda-soft/ARS-SettlementService/internal/usecase/settle_period"
)

const sheetName = "Отчёт"

var columns = []string{
	"ID бронирования",
	"Апартамент",
	"Владелец",
	"Заезд",
	"Выезд",
	"Статус",
	"Сумма",
	"Комиссия агрегатора, %",
	"Комиссия агрегатора",
	"Налоги/банк",
	"Остаток до упр. комиссии",
	"Ставка упр. комиссии, %",
	"Управляющая комиссия",
	"Остаток до расходов",
	"Операционные расходы",
	"Средства владельца",
}

// buildWorkbook собирает XLSX файл отчёта: строка заголовков, строка на каждое
// бронирование и итоговая строка
func buildWorkbook(report *settlePeriod.Response) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, title := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range report.Rows {
		values := []interface{}{
			row.BookingID,
			row.ApartmentID,
			row.OwnerName,
			row.CheckIn,
			row.CheckOut,
			row.Status,
			row.TotalAmount,
			row.AggregatorCommissionPercent,
			row.AggregatorCommissionAmount,
			row.TaxBankCommissionAmount,
			row.RemainderBeforeManagement,
			row.CommissionRatePercent,
			row.ManagementCommission,
			row.RemainderBeforeExpenses,
			row.OperatingExpenses,
			row.OwnerFunds,
		}
		if err := writeRow(f, rowIdx+2, values); err != nil {
			return nil, err
		}
	}

	totalsRow := len(report.Rows) + 2
	totals := []interface{}{
		"Итого",
		"",
		"",
		"",
		"",
		"",
		report.Totals.TotalAmount,
		"",
		report.Totals.AggregatorCommissionAmount,
		report.Totals.TaxBankCommissionAmount,
		report.Totals.RemainderBeforeManagement,
		"",
		report.Totals.ManagementCommission,
		report.Totals.RemainderBeforeExpenses,
		report.Totals.OperatingExpenses,
		report.Totals.OwnerFunds,
	}
	if err := writeRow(f, totalsRow, totals); err != nil {
		return nil, err
	}

	return f, nil
}

func writeRow(f *excelize.File, rowNum int, values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// fileName имя выгружаемого файла по границам периода
func fileName(report *settlePeriod.Response) string {
	return fmt.Sprintf("settlement_%s_%s.xlsx", report.From, report.To)
}
