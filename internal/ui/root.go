package ui

import (
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/UKR-PROJECTS/instaloader-gui/internal/agent"
	"github.com/UKR-PROJECTS/instaloader-gui/internal/config"
	"github.com/UKR-PROJECTS/instaloader-gui/internal/download"
	"github.com/UKR-PROJECTS/instaloader-gui/internal/history"
	"github.com/UKR-PROJECTS/instaloader-gui/internal/media"
	"github.com/UKR-PROJECTS/instaloader-gui/internal/model"
	"github.com/UKR-PROJECTS/instaloader-gui/internal/platform"
	"github.com/UKR-PROJECTS/instaloader-gui/internal/transcribe"
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	settings *config.Settings
	history  *history.Store

	// Queue state; mutated only on the Fyne UI thread
	items []*model.ReelItem

	// Active run, nil when idle
	service *download.Service
	running bool

	// UI components
	urlEntry    *widget.Entry
	addBtn      *widget.Button
	downloadBtn *widget.Button
	stopBtn     *widget.Button
	reelList    *widget.List
	statusLabel *widget.Label
	progressBar *widget.ProgressBar
	depsLabel   *widget.Label

	// Option controls
	videoCheck      *widget.Check
	thumbnailCheck  *widget.Check
	audioCheck      *widget.Check
	captionCheck    *widget.Check
	transcribeCheck *widget.Check
	agentSelect     *widget.Select
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, store *history.Store) *RootUI {
	settings := config.NewSettings(app)

	// Ensure the base download directory exists
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		log.Printf("Failed to ensure downloads dir %s: %v", downloadsDir, err)
	}

	ui := &RootUI{
		window:   window,
		settings: settings,
		history:  store,
	}

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// URL entry row
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder("Paste Instagram reel URL...")
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onAddClick()
	}

	ui.addBtn = widget.NewButton("Add to Queue", ui.onAddClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, settingsBtn, ui.addBtn, ui.urlEntry)

	// Option checkboxes and agent selector
	opts := ui.settings.GetDownloadOptions()
	ui.videoCheck = widget.NewCheck("Video", nil)
	ui.videoCheck.SetChecked(opts.Video)
	ui.thumbnailCheck = widget.NewCheck("Thumbnail", nil)
	ui.thumbnailCheck.SetChecked(opts.Thumbnail)
	ui.audioCheck = widget.NewCheck("Audio", nil)
	ui.audioCheck.SetChecked(opts.Audio)
	ui.captionCheck = widget.NewCheck("Caption", nil)
	ui.captionCheck.SetChecked(opts.Caption)
	ui.transcribeCheck = widget.NewCheck("Transcript", nil)
	ui.transcribeCheck.SetChecked(opts.Transcribe)

	agentNames := []string{}
	for _, kind := range ui.settings.GetAgentOptions() {
		agentNames = append(agentNames, kind.String())
	}
	ui.agentSelect = widget.NewSelect(agentNames, nil)
	ui.agentSelect.SetSelected(opts.PreferredAgent.String())

	optionsRow := container.NewHBox(
		ui.videoCheck,
		ui.thumbnailCheck,
		ui.audioCheck,
		ui.captionCheck,
		ui.transcribeCheck,
		widget.NewSeparator(),
		widget.NewLabel("Downloader:"),
		ui.agentSelect,
	)

	// Queue list
	ui.reelList = widget.NewList(
		func() int { return len(ui.items) },
		func() fyne.CanvasObject { return ui.createReelRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateReelRow(id, obj) },
	)

	// Bottom panel: run controls, status line, dependency report
	ui.downloadBtn = widget.NewButton(IconDownload+" Download All", ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.stopBtn = widget.NewButton("Stop", ui.onStopClick)
	ui.stopBtn.Disable()

	ui.statusLabel = widget.NewLabel("Ready")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	ui.progressBar = widget.NewProgressBar()

	ui.depsLabel = widget.NewLabel(ui.dependencyLine())
	ui.depsLabel.TextStyle = fyne.TextStyle{Italic: true}

	controlRow := container.NewBorder(nil, nil, nil, container.NewHBox(ui.downloadBtn, ui.stopBtn), ui.statusLabel)
	bottomPanel := container.NewVBox(ui.progressBar, controlRow, ui.depsLabel)

	content := container.NewBorder(
		container.NewVBox(topPanel, optionsRow), // top
		bottomPanel,                             // bottom
		nil,                                     // left
		nil,                                     // right
		ui.reelList,                             // center
	)

	ui.window.SetContent(content)
	log.Printf("UI setup completed successfully")
}

// dependencyLine summarizes external tool availability for the status area
func (ui *RootUI) dependencyLine() string {
	report := platform.DependencyStatus()
	if summary := report.Summary(); summary != "" {
		return summary
	}
	if !report.WhisperFound {
		return "All tools found (whisper-cli missing, transcription unavailable)"
	}
	return "All tools found"
}

// onAddClick validates the entered URL and appends it to the queue
func (ui *RootUI) onAddClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	if urlText == "" {
		ui.showPopup("Please enter a URL")
		return
	}

	if !platform.IsValidPostURL(urlText) {
		ui.showPopup("Not a valid Instagram reel URL")
		return
	}

	for _, item := range ui.items {
		if item.URL == urlText {
			ui.showPopup("URL already in queue")
			return
		}
	}

	log.Printf("Queueing reel URL: %s", urlText)
	ui.items = append(ui.items, model.NewReelItem(urlText))
	ui.reelList.Refresh()
	ui.urlEntry.SetText("")
	ui.statusLabel.SetText("Queued. Press Download All to start.")
}

// onDownloadClick starts a download run over the queued items
func (ui *RootUI) onDownloadClick() {
	if ui.running {
		ui.showPopup("A download run is already in progress")
		return
	}

	var pending []*model.ReelItem
	for _, item := range ui.items {
		if item.Status == model.StatusPending || item.Status == model.StatusError {
			item.Status = model.StatusPending
			item.Progress = 0
			item.ErrorMessage = ""
			pending = append(pending, item)
		}
	}
	if len(pending) == 0 {
		ui.showPopup("Queue is empty")
		return
	}

	opts := ui.collectOptions()
	ui.settings.SetDownloadOptions(opts)

	extractor := media.NewExtractor()
	agents := map[model.AgentKind]agent.Agent{
		model.AgentInstagram: agent.NewInstagramAgent(extractor),
		model.AgentYTDLP:     agent.NewYTDLPAgent(extractor),
	}
	modelPath := ui.settings.GetWhisperModelPath()
	loadTranscriber := func() (transcribe.Transcriber, error) {
		t, err := transcribe.LoadWhisper(modelPath)
		if err != nil {
			return nil, err
		}
		return t, nil
	}

	ui.service = download.NewService(pending, opts, agents, extractor, loadTranscriber,
		ui.settings.GetDownloadDirectory(), download.Callbacks{
			OnProgress:  ui.onProgress,
			OnCompleted: ui.onCompleted,
			OnError:     ui.onError,
			OnFinished:  ui.onFinished,
		})

	ui.running = true
	ui.downloadBtn.Disable()
	ui.stopBtn.Enable()
	ui.progressBar.SetValue(0)
	ui.statusLabel.SetText("Starting download run...")

	log.Printf("Starting download run: %d items, agent=%s", len(pending), opts.PreferredAgent)
	ui.service.Start()
}

// onStopClick requests a cooperative stop after the current item
func (ui *RootUI) onStopClick() {
	if ui.service == nil || !ui.running {
		return
	}
	ui.service.Stop()
	ui.stopBtn.Disable()
	ui.statusLabel.SetText("Stopping after current item...")
}

// collectOptions reads the option controls into a DownloadOptions value
func (ui *RootUI) collectOptions() model.DownloadOptions {
	preferred := model.AgentKind(ui.agentSelect.Selected)
	if preferred != model.AgentInstagram && preferred != model.AgentYTDLP {
		preferred = model.AgentInstagram
	}
	return model.DownloadOptions{
		Video:          ui.videoCheck.Checked,
		Thumbnail:      ui.thumbnailCheck.Checked,
		Audio:          ui.audioCheck.Checked,
		Caption:        ui.captionCheck.Checked,
		Transcribe:     ui.transcribeCheck.Checked,
		PreferredAgent: preferred,
	}
}

// findItem locates a queued item by URL
func (ui *RootUI) findItem(url string) *model.ReelItem {
	for _, item := range ui.items {
		if item.URL == url {
			return item
		}
	}
	return nil
}

// onProgress handles progress events from the download service.
// Events with an empty URL describe the run as a whole.
func (ui *RootUI) onProgress(url string, percent int, status string) {
	fyne.Do(func() {
		if status != "" {
			ui.statusLabel.SetText(status)
		}
		if url == "" {
			return
		}
		item := ui.findItem(url)
		if item == nil {
			return
		}
		item.Status = model.StatusDownloading
		item.Progress = percent
		ui.progressBar.SetValue(float64(percent) / 100)
		ui.reelList.Refresh()
	})
}

// onCompleted handles a finished item
func (ui *RootUI) onCompleted(url string, result *model.Result) {
	sessionID := ""
	if ui.service != nil {
		sessionID = ui.service.SessionID()
	}
	if ui.history != nil {
		if err := ui.history.RecordCompleted(sessionID, url, result); err != nil {
			log.Printf("Failed to record completion for %s: %v", url, err)
		}
	}

	fyne.Do(func() {
		item := ui.findItem(url)
		if item == nil {
			return
		}
		item.ApplyResult(result)
		ui.progressBar.SetValue(1)
		ui.reelList.Refresh()
		ui.sendCompletionNotification(item)
	})
}

// onError handles a failed item. An empty URL means the run itself failed.
func (ui *RootUI) onError(url string, message string) {
	sessionID := ""
	if ui.service != nil {
		sessionID = ui.service.SessionID()
	}
	if ui.history != nil && url != "" {
		if err := ui.history.RecordError(sessionID, url, message); err != nil {
			log.Printf("Failed to record error for %s: %v", url, err)
		}
	}

	fyne.Do(func() {
		if url == "" {
			ui.statusLabel.SetText(message)
			return
		}
		item := ui.findItem(url)
		if item == nil {
			return
		}
		item.SetError(message)
		ui.reelList.Refresh()
	})
}

// onFinished handles the end of a download run
func (ui *RootUI) onFinished() {
	sessionFolder := ""
	if ui.service != nil {
		sessionFolder = ui.service.SessionFolder()
	}

	fyne.Do(func() {
		ui.running = false
		ui.downloadBtn.Enable()
		ui.stopBtn.Disable()
		ui.statusLabel.SetText("All downloads finished")
		ui.reelList.Refresh()

		if ui.settings.GetAutoRevealOnComplete() && sessionFolder != "" {
			if err := platform.OpenFolderInManager(sessionFolder); err != nil {
				log.Printf("Failed to open session folder %s: %v", sessionFolder, err)
			}
		}
	})
}

// createReelRow creates a new queue row widget
func (ui *RootUI) createReelRow() fyne.CanvasObject {
	row := NewReelRow(model.NewReelItem(""))
	row.SetCallbacks(ui.onOpenFolder, ui.onRemoveItem)
	return row
}

// updateReelRow updates a queue row with current item data
func (ui *RootUI) updateReelRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(ui.items) {
		return
	}
	if row, ok := obj.(*ReelRow); ok {
		row.SetCallbacks(ui.onOpenFolder, ui.onRemoveItem)
		row.UpdateItem(ui.items[id])
	}
}

// onOpenFolder reveals an item folder in the system file manager
func (ui *RootUI) onOpenFolder(folderPath string) {
	if folderPath == "" {
		return
	}
	if err := platform.OpenFolderInManager(folderPath); err != nil {
		log.Printf("Failed to open folder %s: %v", folderPath, err)
		ui.showPopup("Failed to open folder: " + err.Error())
	}
}

// onRemoveItem removes a queued item. The queue is frozen while a run is
// active; the worker processes a snapshot, so removal would only desync the
// displayed list from the events still arriving for it.
func (ui *RootUI) onRemoveItem(url string) {
	if ui.running {
		ui.showPopup("Cannot change the queue while downloading")
		return
	}
	for i, item := range ui.items {
		if item.URL == url {
			ui.items = append(ui.items[:i], ui.items[i+1:]...)
			ui.reelList.Refresh()
			log.Printf("Removed %s from queue", url)
			return
		}
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, func() {
		ui.depsLabel.SetText(ui.dependencyLine())
		ui.showPopup("Settings saved")
	})
}

// showPopup displays a transient message popup
func (ui *RootUI) showPopup(message string) {
	widget.ShowPopUp(widget.NewLabel(message), ui.window.Canvas())
}

// sendCompletionNotification sends a system notification and an in-app toast
func (ui *RootUI) sendCompletionNotification(item *model.ReelItem) {
	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   "Download Completed",
		Content: item.GetDisplayTitle(),
	})

	ui.showToastNotification(item)
}

// showToastNotification shows an in-app toast with a folder action
func (ui *RootUI) showToastNotification(item *model.ReelItem) {
	titleLabel := widget.NewLabel("Download Completed")
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(item.GetDisplayTitle())
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	folderBtn := widget.NewButton("Open Folder", func() {
		ui.onOpenFolder(item.FolderPath)
	})
	folderBtn.Importance = widget.HighImportance

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, titleLabel, closeBtn)
	content := container.NewVBox(header, messageLabel, container.NewHBox(folderBtn))

	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin)

	toastPopup.Resize(toastSize)
	toastPopup.Move(toastPos)
	toastPopup.Show()

	// Auto-hide after configured time
	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(func() {
			if toastPopup != nil {
				toastPopup.Hide()
			}
		})
	}()
}
