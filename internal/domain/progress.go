package domain

// Notification is a one-shot user notice raised by the backend
type Notification string

const (
	NotificationLibraryImport Notification = "LibraryImport"
	NotificationNone          Notification = "None"
)

// ProgressInfo names the long-running backend job being reported
type ProgressInfo string

const (
	ProgressLibraryImport ProgressInfo = "LibraryImport"
	ProgressFileImport    ProgressInfo = "FileImport"
	ProgressCoverExtract  ProgressInfo = "CoverExtract"
	ProgressDelete        ProgressInfo = "Delete"
	ProgressUpdateTracks  ProgressInfo = "UpdateTracks"
	ProgressUpdateAlbum   ProgressInfo = "UpdateAlbum"
	ProgressNone          ProgressInfo = "None"
)

// Progress reports a backend job's advancement
type Progress struct {
	Info  ProgressInfo `json:"info"`
	Value *float64     `json:"value"`
	Done  bool         `json:"done"`
}

// BackendMessagePayload is a backend_message push event; each slot is optional
type BackendMessagePayload struct {
	Notification *Notification `json:"notification"`
	Error        *string       `json:"error"`
	Warning      *string       `json:"warning"`
	Progress     *Progress     `json:"progress"`
}
