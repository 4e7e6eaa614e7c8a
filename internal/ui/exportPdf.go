package ui

import (
	"log"

	"MyLocalPaint/internal/export"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// ShowExportDialog asks for a destination and renders the board into it as PDF.
func ShowExportDialog(board *BoardWidget, w fyne.Window) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		if writer == nil {
			return
		}
		if err := writeExport(board, writer); err != nil {
			dialog.ShowError(err, w)
		}
	}, w)
	d.SetFileName("board.pdf")
	d.Show()
}

func writeExport(board *BoardWidget, writer fyne.URIWriteCloser) error {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("Error closing writer: %v", err)
		}
	}()
	if err := export.PDF(writer, board.Scene()); err != nil {
		log.Printf("[UI] Export of %s failed: %v", board.Name, err)
		return err
	}
	return nil
}
