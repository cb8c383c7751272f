package ui

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/UKR-PROJECTS/instaloader-gui/internal/model"
)

// ReelRow represents a compact queue row widget for a single reel
type ReelRow struct {
	widget.BaseWidget

	item *model.ReelItem

	// UI components
	titleLabel    *widget.Label
	statusLabel   *widget.Label
	progressLabel *widget.Label

	// Action buttons
	folderBtn *widget.Button
	removeBtn *widget.Button

	// Callbacks
	onOpenFolder func(folderPath string)
	onRemove     func(url string)
}

// NewReelRow creates a new reel row widget
func NewReelRow(item *model.ReelItem) *ReelRow {
	if item == nil {
		item = model.NewReelItem("")
	}

	rr := &ReelRow{item: item}
	rr.ExtendBaseWidget(rr)
	rr.createUI()
	rr.updateFromItem()
	return rr
}

// SetCallbacks sets the action callbacks
func (rr *ReelRow) SetCallbacks(onOpenFolder func(folderPath string), onRemove func(url string)) {
	rr.onOpenFolder = onOpenFolder
	rr.onRemove = onRemove
}

// UpdateItem updates the row with new item data
func (rr *ReelRow) UpdateItem(item *model.ReelItem) {
	if item == nil {
		return
	}
	rr.item = item
	rr.updateFromItem()
	rr.Refresh()
}

// createUI creates the UI components
func (rr *ReelRow) createUI() {
	rr.titleLabel = widget.NewLabel("")
	rr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	rr.titleLabel.Truncation = fyne.TextTruncateEllipsis
	rr.titleLabel.Alignment = fyne.TextAlignLeading

	rr.statusLabel = widget.NewLabel("")
	rr.statusLabel.Alignment = fyne.TextAlignTrailing
	rr.progressLabel = widget.NewLabel("")
	rr.progressLabel.Alignment = fyne.TextAlignTrailing

	rr.folderBtn = widget.NewButton(IconFolder, func() {
		current := rr.item
		if current.FolderPath == "" {
			widget.ShowPopUp(widget.NewLabel("Folder not available yet. Wait for download to complete."),
				fyne.CurrentApp().Driver().CanvasForObject(rr.folderBtn))
			return
		}
		if rr.onOpenFolder != nil {
			rr.onOpenFolder(current.FolderPath)
		}
	})
	rr.folderBtn.Importance = widget.MediumImportance

	rr.removeBtn = widget.NewButton(IconClose, func() {
		current := rr.item
		if rr.onRemove != nil {
			rr.onRemove(current.URL)
		}
	})
	rr.removeBtn.Importance = widget.LowImportance
}

// updateFromItem updates UI components based on item state
func (rr *ReelRow) updateFromItem() {
	if rr.item == nil {
		return
	}

	title := strings.TrimSpace(rr.item.GetDisplayTitle())
	title = strings.ReplaceAll(title, "\n", " ")
	rr.titleLabel.SetText(title)

	switch rr.item.Status {
	case model.StatusError:
		rr.statusLabel.Importance = widget.DangerImportance
		rr.statusLabel.SetText(IconError + " " + rr.item.Status.String())
	case model.StatusCompleted:
		rr.statusLabel.Importance = widget.SuccessImportance
		rr.statusLabel.SetText(rr.item.Status.String())
	case model.StatusDownloading:
		rr.statusLabel.Importance = widget.HighImportance
		rr.statusLabel.SetText(rr.item.Status.String())
	default:
		rr.statusLabel.Importance = widget.MediumImportance
		rr.statusLabel.SetText(rr.item.Status.String())
	}

	if rr.item.Status == model.StatusCompleted {
		rr.progressLabel.SetText("")
	} else if rr.item.Status.IsActive() {
		rr.progressLabel.SetText(fmt.Sprintf(ProgressLabelFormat, rr.item.Progress))
	} else {
		rr.progressLabel.SetText(DashPlaceholder)
	}

	rr.updateButtons()
}

// updateButtons updates button states based on item status
func (rr *ReelRow) updateButtons() {
	if rr.item.FolderPath != "" {
		rr.folderBtn.Enable()
	} else {
		rr.folderBtn.Disable()
	}

	// Removing mid-download is not supported; the queue is snapshotted at start
	if rr.item.Status.IsActive() {
		rr.removeBtn.Disable()
	} else {
		rr.removeBtn.Enable()
	}
}

// CreateRenderer creates the widget renderer
func (rr *ReelRow) CreateRenderer() fyne.WidgetRenderer {
	return &reelRowRenderer{row: rr}
}

// reelRowRenderer renders the reel row widget
type reelRowRenderer struct {
	row    *ReelRow
	layout *fyne.Container
}

// Layout arranges the components
func (r *reelRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *reelRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *reelRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	if r.row.item != nil {
		log.Printf("ReelRow refresh: url=%s status=%s progress=%d",
			r.row.item.URL, r.row.item.Status, r.row.item.Progress)
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *reelRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *reelRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *reelRowRenderer) createLayout() {
	rr := r.row

	// Helper to fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	info := container.NewHBox(
		fixedWidth(StatusLabelWidth, rr.statusLabel),
		fixedWidth(PercentLabelWidth, rr.progressLabel),
	)
	actions := container.NewHBox(rr.folderBtn, rr.removeBtn)

	rightCluster := container.NewBorder(nil, nil, nil, actions, info)
	mainContent := container.NewBorder(nil, nil, nil, rightCluster, rr.titleLabel)

	r.layout = container.NewVBox(
		mainContent,
		widget.NewSeparator(),
	)
	r.layout.Resize(fyne.NewSize(RowMinWidth, RowDefaultH))
}
