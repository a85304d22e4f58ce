package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/gotk3/gotk3/gtk"
)

// NewErrorDialog shows err in a modal GTK message dialog and blocks until it is closed.
// If GTK cannot start, for instance without a display, it logs and returns.
func NewErrorDialog(err error) {
	if initErr := gtk.InitCheck(nil); initErr != nil {
		log.Println("no error dialog:", initErr)
		return
	}

	_, file, line, ok := runtime.Caller(1)

	fileLocation := "unknown file"
	if ok {
		fileLocation = fmt.Sprintf("%s:%v", file, line)
	}

	dialog := gtk.MessageDialogNew(
		nil,
		gtk.DIALOG_MODAL,
		gtk.MESSAGE_ERROR,
		gtk.BUTTONS_CLOSE,
		"Error in %s: %s",
		fileLocation,
		err.Error(),
	)
	dialog.SetTitle("OpenGL")

	messageArea, areaErr := dialog.GetMessageArea()
	if areaErr != nil {
		log.Println(areaErr)

	} else {
		messageArea.GetChildren().Foreach(func(item interface{}) {
			if widget, ok := item.(*gtk.Widget); ok {
				l, err := gtk.WidgetToLabel(widget)
				if err != nil {
					return
				}

				l.SetSelectable(true)
			}
		})
	}

	dialog.SetKeepAbove(true)
	dialog.Run()
	dialog.Destroy()
}
