package pipeline

// RunStats tracks aggregate counters across a rename run.
type RunStats struct {
	Albums        int // Album folders discovered.
	Files         int // Supported files examined inside albums.
	AlbumsRenamed int
	FilesRenamed  int
	Unchanged     int // Items that needed no rename.
	Failed        int // Items whose rename or listing failed.
	Collisions    int // Targets claimed by more than one source.
}

// Renamed returns the total number of renamed items (or, in a dry run,
// items that would be renamed).
func (s *RunStats) Renamed() int {
	return s.AlbumsRenamed + s.FilesRenamed
}

// Add accumulates o into s. Used by watch mode to keep totals across
// rescans.
func (s *RunStats) Add(o RunStats) {
	s.Albums += o.Albums
	s.Files += o.Files
	s.AlbumsRenamed += o.AlbumsRenamed
	s.FilesRenamed += o.FilesRenamed
	s.Unchanged += o.Unchanged
	s.Failed += o.Failed
	s.Collisions += o.Collisions
}
