package engine

// Observer receives progress notifications from UploadEngine. Calls are made
// synchronously from the run loop, between attempts.
type Observer interface {
	// FileStarted is called before the first attempt on a file. index is 0-based.
	FileStarted(index, total int, path string)
	// Retrying is called before waiting for retry number attempt (1-based).
	Retrying(path string, attempt, maxRetries int, err error)
	// FileFinished is called once the file's report is recorded.
	FileFinished(index, total int, fr FileReport)
	// RunFinished is called once with the final report.
	RunFinished(report *RunReport)
}

// Observers fans notifications out to every member in order.
type Observers []Observer

func (o Observers) FileStarted(index, total int, path string) {
	for _, obs := range o {
		obs.FileStarted(index, total, path)
	}
}

func (o Observers) Retrying(path string, attempt, maxRetries int, err error) {
	for _, obs := range o {
		obs.Retrying(path, attempt, maxRetries, err)
	}
}

func (o Observers) FileFinished(index, total int, fr FileReport) {
	for _, obs := range o {
		obs.FileFinished(index, total, fr)
	}
}

func (o Observers) RunFinished(report *RunReport) {
	for _, obs := range o {
		obs.RunFinished(report)
	}
}

// NopObserver ignores all notifications.
type NopObserver struct{}

func (NopObserver) FileStarted(int, int, string)      {}
func (NopObserver) Retrying(string, int, int, error)  {}
func (NopObserver) FileFinished(int, int, FileReport) {}
func (NopObserver) RunFinished(*RunReport)            {}
