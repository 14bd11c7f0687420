// Package connectors wires the data source and presentation adapters to the
// core ports.
//
// Factory dispatches a configured source kind to the Google Sheets reader or
// the local workbook reader, and opens template and target presentations
// through the Slides API. Google services are created on first use, so
// commands that never reach Google need no credentials.
package connectors
