package ui

import (
	"MyLocalPaint/internal/config"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

func RunApp(cfg config.Config, board *BoardWidget) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Window.Title)
	myWindow.Resize(cfg.WindowSize())

	toolbar := NewToolbar(board, func() { ShowExportDialog(board, myWindow) })

	content := container.NewBorder(toolbar, nil, nil, nil, container.NewScroll(board))

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
