package dataset

// Source is one downloadable file: its expected checksum and the mirrors serving it.
type Source struct {
	Checksum string   `yaml:"checksum"`
	Mirrors  []string `yaml:"urls"`
}

// Descriptor is the static definition of a dataset.
type Descriptor struct {
	Prefix      string
	Sources     []Source
	NoExtract   bool
	Description string
}

// Phase names a step of a dataset fetch.
type Phase string

// Fetch phases reported through Events.
const (
	PhaseLocating    Phase = "locating"
	PhaseDownloading Phase = "downloading"
	PhaseExtracting  Phase = "extracting"
	PhaseCopying     Phase = "copying"
	PhaseSkipped     Phase = "skipped"
	PhaseDone        Phase = "done"
)

// Event represents a simple progress notification.
type Event struct {
	Phase  Phase
	Prefix string
	Msg    string
}

// Events carries callbacks for progress events.
type Events struct {
	OnEvent func(Event)
}
