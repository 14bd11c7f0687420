// Package xlsx reads form responses from a local Excel workbook.
//
// Cells are read as raw values, so date cells arrive as spreadsheet
// serial numbers in text form, the same shape the Sheets API returns
// with SERIAL_NUMBER rendering.
package xlsx
