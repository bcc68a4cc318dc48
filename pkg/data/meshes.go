package data

import (
	"context"

	"github.com/glorpus-work/o3data/pkg/dataset"
)

// ArmadilloMesh is the Stanford armadillo mesh.
type ArmadilloMesh struct{ *dataset.Template }

// NewArmadilloMesh fetches ArmadilloMesh.ply.
func NewArmadilloMesh(ctx context.Context, dataRoot string, opts ...dataset.Option) (*ArmadilloMesh, error) {
	return build(ctx, armadilloMesh, dataRoot, opts, func(t *dataset.Template) *ArmadilloMesh { return &ArmadilloMesh{t} })
}

// Path returns ArmadilloMesh.ply.
func (d *ArmadilloMesh) Path() string { return under(d.Template, "ArmadilloMesh.ply") }

// Files maps accessor names to paths.
func (d *ArmadilloMesh) Files() map[string]string { return files{}.add("path", d.Path()) }

// BunnyMesh is the Stanford bunny triangle mesh.
type BunnyMesh struct{ *dataset.Template }

// NewBunnyMesh fetches BunnyMesh.ply.
func NewBunnyMesh(ctx context.Context, dataRoot string, opts ...dataset.Option) (*BunnyMesh, error) {
	return build(ctx, bunnyMesh, dataRoot, opts, func(t *dataset.Template) *BunnyMesh { return &BunnyMesh{t} })
}

// Path returns BunnyMesh.ply.
func (d *BunnyMesh) Path() string { return under(d.Template, "BunnyMesh.ply") }

// Files maps accessor names to paths.
func (d *BunnyMesh) Files() map[string]string { return files{}.add("path", d.Path()) }

// KnotMesh is a mobius knot mesh.
type KnotMesh struct{ *dataset.Template }

// NewKnotMesh fetches KnotMesh.ply.
func NewKnotMesh(ctx context.Context, dataRoot string, opts ...dataset.Option) (*KnotMesh, error) {
	return build(ctx, knotMesh, dataRoot, opts, func(t *dataset.Template) *KnotMesh { return &KnotMesh{t} })
}

// Path returns KnotMesh.ply.
func (d *KnotMesh) Path() string { return under(d.Template, "KnotMesh.ply") }

// Files maps accessor names to paths.
func (d *KnotMesh) Files() map[string]string { return files{}.add("path", d.Path()) }

// JuneauImage is a photograph of Juneau.
type JuneauImage struct{ *dataset.Template }

// NewJuneauImage fetches JuneauImage.jpg.
func NewJuneauImage(ctx context.Context, dataRoot string, opts ...dataset.Option) (*JuneauImage, error) {
	return build(ctx, juneauImage, dataRoot, opts, func(t *dataset.Template) *JuneauImage { return &JuneauImage{t} })
}

// Path returns JuneauImage.jpg.
func (d *JuneauImage) Path() string { return under(d.Template, "JuneauImage.jpg") }

// Files maps accessor names to paths.
func (d *JuneauImage) Files() map[string]string { return files{}.add("path", d.Path()) }

var monkeyFiles = pathMap{
	"albedo":                "albedo.png",
	"ao":                    "ao.png",
	"metallic":              "metallic.png",
	"monkey_material":       "monkey.mtl",
	"monkey_model":          "monkey.obj",
	"monkey_solid_material": "monkey_solid.mtl",
	"monkey_solid_model":    "monkey_solid.obj",
	"normal":                "normal.png",
	"roughness":             "roughness.png",
}

// MonkeyModel is the textured monkey model.
type MonkeyModel struct{ *dataset.Template }

// NewMonkeyModel fetches the monkey model.
func NewMonkeyModel(ctx context.Context, dataRoot string, opts ...dataset.Option) (*MonkeyModel, error) {
	return build(ctx, monkeyModel, dataRoot, opts, func(t *dataset.Template) *MonkeyModel { return &MonkeyModel{t} })
}

// PathMap returns every named file.
func (d *MonkeyModel) PathMap() map[string]string { return monkeyFiles.resolve(d.Template) }

// Path returns the file registered under key.
func (d *MonkeyModel) Path(key string) (string, error) { return monkeyFiles.lookup(d.Template, key) }

// Files maps accessor names to paths.
func (d *MonkeyModel) Files() map[string]string { return d.PathMap() }

var swordFiles = pathMap{
	"sword_material": "UV.mtl",
	"sword_model":    "UV.obj",
	"base_color":     "UV_blinn1SG_BaseColor.png",
	"metallic":       "UV_blinn1SG_Metallic.png",
	"normal":         "UV_blinn1SG_Normal.png",
	"roughness":      "UV_blinn1SG_Roughness.png",
}

// SwordModel is the textured sword model.
type SwordModel struct{ *dataset.Template }

// NewSwordModel fetches the sword model.
func NewSwordModel(ctx context.Context, dataRoot string, opts ...dataset.Option) (*SwordModel, error) {
	return build(ctx, swordModel, dataRoot, opts, func(t *dataset.Template) *SwordModel { return &SwordModel{t} })
}

// PathMap returns every named file.
func (d *SwordModel) PathMap() map[string]string { return swordFiles.resolve(d.Template) }

// Path returns the file registered under key.
func (d *SwordModel) Path(key string) (string, error) { return swordFiles.lookup(d.Template, key) }

// Files maps accessor names to paths.
func (d *SwordModel) Files() map[string]string { return d.PathMap() }

// The create_* spelling is the published key set.
var crateFiles = pathMap{
	"create_material": "crate.mtl",
	"create_model":    "crate.obj",
	"texture_image":   "crate.jpg",
}

// CrateModel is the textured crate model.
type CrateModel struct{ *dataset.Template }

// NewCrateModel fetches the crate model.
func NewCrateModel(ctx context.Context, dataRoot string, opts ...dataset.Option) (*CrateModel, error) {
	return build(ctx, crateModel, dataRoot, opts, func(t *dataset.Template) *CrateModel { return &CrateModel{t} })
}

// PathMap returns every named file.
func (d *CrateModel) PathMap() map[string]string { return crateFiles.resolve(d.Template) }

// Path returns the file registered under key.
func (d *CrateModel) Path(key string) (string, error) { return crateFiles.lookup(d.Template, key) }

// Files maps accessor names to paths.
func (d *CrateModel) Files() map[string]string { return d.PathMap() }
