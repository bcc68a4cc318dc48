package data

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/glorpus-work/o3data/pkg/dataset"
	pkgerrors "github.com/glorpus-work/o3data/pkg/errors"
)

// Kind groups datasets in listings.
type Kind string

// Dataset kinds.
const (
	KindPointCloud Kind = "pointcloud"
	KindRGBD       Kind = "rgbd"
	KindMesh       Kind = "mesh"
	KindModel      Kind = "model"
	KindImage      Kind = "image"
	KindBundle     Kind = "bundle"
	KindUser       Kind = "user"
)

// Resource is the common surface of every dataset.
type Resource interface {
	Prefix() string
	DataRoot() string
	DownloadDir() string
	ExtractDir() string
	Description() string
	Help() string
	IsFetched() bool
	Fetch(ctx context.Context) error
	DisplayDataTree(w io.Writer, depth int) error
	DeleteDownloadFiles() error
	DeleteExtractFiles() error
	// Delete removes the selected directories and runs the post-delete hook once.
	Delete(ctx context.Context, download, extract bool) error
	// Files maps accessor names such as "paths[0]" to absolute paths.
	Files() map[string]string
}

type opener func(ctx context.Context, desc dataset.Descriptor, dataRoot string, opts []dataset.Option) (Resource, error)

// Entry is one named dataset of a Registry.
type Entry struct {
	Name       string
	Kind       Kind
	Descriptor dataset.Descriptor
	open       opener
}

func typed[T Resource](wrap func(*dataset.Template) T) opener {
	return func(ctx context.Context, desc dataset.Descriptor, dataRoot string, opts []dataset.Option) (Resource, error) {
		t, err := dataset.NewTemplate(ctx, desc, dataRoot, opts...)
		if err != nil {
			return nil, err
		}
		return wrap(t), nil
	}
}

func builtins() []Entry {
	return []Entry{
		{"Open3DSampleData", KindBundle, open3DSampleData, typed(func(t *dataset.Template) *Open3DSampleData { return &Open3DSampleData{t} })},
		{"RedwoodLivingRoom", KindPointCloud, redwoodLivingRoom, typed(func(t *dataset.Template) *RedwoodLivingRoom { return &RedwoodLivingRoom{t} })},
		{"StanfordBunny", KindPointCloud, stanfordBunny, typed(func(t *dataset.Template) *StanfordBunny { return &StanfordBunny{t} })},
		{"DemoICPPointClouds", KindPointCloud, demoICPPointClouds, typed(func(t *dataset.Template) *DemoICPPointClouds { return &DemoICPPointClouds{t} })},
		{"DemoColoredICPPointClouds", KindPointCloud, demoColoredICPPointClouds, typed(func(t *dataset.Template) *DemoColoredICPPointClouds {
			return &DemoColoredICPPointClouds{t}
		})},
		{"DemoCropPointCloud", KindPointCloud, demoCropPointCloud, typed(func(t *dataset.Template) *DemoCropPointCloud { return &DemoCropPointCloud{t} })},
		{"DemoFeatureMatchingPointClouds", KindPointCloud, demoFeatureMatchingPointClouds, typed(func(t *dataset.Template) *DemoFeatureMatchingPointClouds {
			return &DemoFeatureMatchingPointClouds{t}
		})},
		{"DemoPoseGraphOptimization", KindPointCloud, demoPoseGraphOptimization, typed(func(t *dataset.Template) *DemoPoseGraphOptimization {
			return &DemoPoseGraphOptimization{t}
		})},
		{"DemoCustomVisualization", KindPointCloud, demoCustomVisualization, typed(func(t *dataset.Template) *DemoCustomVisualization {
			return &DemoCustomVisualization{t}
		})},
		{"PCDPointCloud", KindPointCloud, pcdPointCloud, typed(func(t *dataset.Template) *PCDPointCloud { return &PCDPointCloud{t} })},
		{"PLYPointCloud", KindPointCloud, plyPointCloud, typed(func(t *dataset.Template) *PLYPointCloud { return &PLYPointCloud{t} })},
		{"PTSPointCloud", KindPointCloud, ptsPointCloud, typed(func(t *dataset.Template) *PTSPointCloud { return &PTSPointCloud{t} })},
		{"SampleNYURGBDImage", KindRGBD, sampleNYURGBDImage, typed(func(t *dataset.Template) *SampleNYURGBDImage { return &SampleNYURGBDImage{t} })},
		{"SampleSUNRGBDImage", KindRGBD, sampleSUNRGBDImage, typed(func(t *dataset.Template) *SampleSUNRGBDImage { return &SampleSUNRGBDImage{t} })},
		{"SampleTUMRGBDImage", KindRGBD, sampleTUMRGBDImage, typed(func(t *dataset.Template) *SampleTUMRGBDImage { return &SampleTUMRGBDImage{t} })},
		{"SampleRedwoodRGBDImages", KindRGBD, sampleRedwoodRGBDImages, typed(func(t *dataset.Template) *SampleRedwoodRGBDImages {
			return &SampleRedwoodRGBDImages{t}
		})},
		{"SampleFountainRGBDImages", KindRGBD, sampleFountainRGBDImages, typed(func(t *dataset.Template) *SampleFountainRGBDImages {
			return &SampleFountainRGBDImages{t}
		})},
		{"SampleL515Bag", KindRGBD, sampleL515Bag, typed(func(t *dataset.Template) *SampleL515Bag { return &SampleL515Bag{t} })},
		{"EaglePointCloud", KindPointCloud, eaglePointCloud, typed(func(t *dataset.Template) *EaglePointCloud { return &EaglePointCloud{t} })},
		{"ArmadilloMesh", KindMesh, armadilloMesh, typed(func(t *dataset.Template) *ArmadilloMesh { return &ArmadilloMesh{t} })},
		{"BunnyMesh", KindMesh, bunnyMesh, typed(func(t *dataset.Template) *BunnyMesh { return &BunnyMesh{t} })},
		{"KnotMesh", KindMesh, knotMesh, typed(func(t *dataset.Template) *KnotMesh { return &KnotMesh{t} })},
		{"MonkeyModel", KindModel, monkeyModel, typed(func(t *dataset.Template) *MonkeyModel { return &MonkeyModel{t} })},
		{"SwordModel", KindModel, swordModel, typed(func(t *dataset.Template) *SwordModel { return &SwordModel{t} })},
		{"CrateModel", KindModel, crateModel, typed(func(t *dataset.Template) *CrateModel { return &CrateModel{t} })},
		{"JuneauImage", KindImage, juneauImage, typed(func(t *dataset.Template) *JuneauImage { return &JuneauImage{t} })},
		{"LivingRoomPointClouds", KindPointCloud, livingRoomPointClouds, typed(func(t *dataset.Template) *LivingRoomPointClouds {
			return &LivingRoomPointClouds{t}
		})},
		{"OfficePointClouds", KindPointCloud, officePointClouds, typed(func(t *dataset.Template) *OfficePointClouds { return &OfficePointClouds{t} })},
	}
}

// UserDataset is a single-download dataset declared in configuration.
type UserDataset struct{ *dataset.Template }

// Files returns the extract dir for archives, or each copied file otherwise.
func (d *UserDataset) Files() map[string]string {
	if !d.NoExtract() {
		return files{}.add("path", d.ExtractDir())
	}
	names := d.DownloadFilenames()
	if len(names) == 1 {
		return files{}.add("path", under(d.Template, names[0]))
	}
	return files{}.list("paths", underAll(d.Template, names))
}

// Registry is a name-indexed set of datasets.
type Registry struct {
	entries map[string]Entry
}

// NewRegistry returns a registry holding every built-in dataset.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]Entry)}
	for _, e := range builtins() {
		r.entries[e.Name] = e
	}
	return r
}

// AddUser registers a dataset declared in configuration. When desc.Prefix
// names a built-in dataset, its sources replace the built-in ones and the
// typed accessors are kept.
func (r *Registry) AddUser(desc dataset.Descriptor) error {
	if desc.Prefix == "" {
		return pkgerrors.ErrEmptyPrefix
	}
	if len(desc.Sources) == 0 {
		return fmt.Errorf("%s: %w", desc.Prefix, pkgerrors.ErrNoSources)
	}
	if e, ok := r.entries[desc.Prefix]; ok && e.Kind != KindUser {
		e.Descriptor.Sources = desc.Sources
		if desc.Description != "" {
			e.Descriptor.Description = desc.Description
		}
		r.entries[desc.Prefix] = e
		return nil
	}
	r.entries[desc.Prefix] = Entry{
		Name:       desc.Prefix,
		Kind:       KindUser,
		Descriptor: desc,
		open:       typed(func(t *dataset.Template) *UserDataset { return &UserDataset{t} }),
	}
	return nil
}

// Names returns the registered dataset names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Open constructs the dataset registered under name, fetching it unless
// dataset.WithoutFetch is among opts.
func (r *Registry) Open(ctx context.Context, name, dataRoot string, opts ...dataset.Option) (Resource, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, pkgerrors.ErrUnknownDataset)
	}
	return e.open(ctx, e.Descriptor, dataRoot, opts)
}

var defaultRegistry = NewRegistry()

// Names lists the built-in datasets.
func Names() []string { return defaultRegistry.Names() }

// Lookup finds a built-in dataset.
func Lookup(name string) (Entry, bool) { return defaultRegistry.Lookup(name) }

// Open constructs a built-in dataset by name.
func Open(ctx context.Context, name, dataRoot string, opts ...dataset.Option) (Resource, error) {
	return defaultRegistry.Open(ctx, name, dataRoot, opts...)
}

