package data

import (
	"context"

	"github.com/glorpus-work/o3data/pkg/dataset"
)

func build[T any](ctx context.Context, desc dataset.Descriptor, dataRoot string, opts []dataset.Option,
	wrap func(*dataset.Template) *T,
) (*T, error) {
	t, err := dataset.NewTemplate(ctx, desc, dataRoot, opts...)
	if err != nil {
		return nil, err
	}
	return wrap(t), nil
}

// Open3DSampleData is the legacy bundle of Open3D test data.
type Open3DSampleData struct{ *dataset.Template }

// NewOpen3DSampleData fetches the legacy sample data bundle.
func NewOpen3DSampleData(ctx context.Context, dataRoot string, opts ...dataset.Option) (*Open3DSampleData, error) {
	return build(ctx, open3DSampleData, dataRoot, opts, func(t *dataset.Template) *Open3DSampleData { return &Open3DSampleData{t} })
}

// Path returns the extract directory, which is the root of the bundle.
func (d *Open3DSampleData) Path() string { return d.ExtractDir() }

// Files maps accessor names to paths.
func (d *Open3DSampleData) Files() map[string]string { return files{}.add("path", d.Path()) }

// RedwoodLivingRoom holds 3 ICL-NUIM living room fragments.
type RedwoodLivingRoom struct{ *dataset.Template }

// NewRedwoodLivingRoom fetches the living room fragments.
func NewRedwoodLivingRoom(ctx context.Context, dataRoot string, opts ...dataset.Option) (*RedwoodLivingRoom, error) {
	return build(ctx, redwoodLivingRoom, dataRoot, opts, func(t *dataset.Template) *RedwoodLivingRoom { return &RedwoodLivingRoom{t} })
}

// Paths returns cloud_bin_{0..2}.pcd.
func (d *RedwoodLivingRoom) Paths() []string {
	return underAll(d.Template, numbered("cloud_bin_%d.pcd", 3))
}

// PathAt returns the i-th fragment.
func (d *RedwoodLivingRoom) PathAt(i int) (string, error) { return pathAt(d.Paths(), i) }

// Files maps accessor names to paths.
func (d *RedwoodLivingRoom) Files() map[string]string { return files{}.list("paths", d.Paths()) }

// StanfordBunny is the Stanford bunny point cloud.
type StanfordBunny struct{ *dataset.Template }

// NewStanfordBunny fetches Bunny.ply.
func NewStanfordBunny(ctx context.Context, dataRoot string, opts ...dataset.Option) (*StanfordBunny, error) {
	return build(ctx, stanfordBunny, dataRoot, opts, func(t *dataset.Template) *StanfordBunny { return &StanfordBunny{t} })
}

// Path returns Bunny.ply.
func (d *StanfordBunny) Path() string { return under(d.Template, "Bunny.ply") }

// Files maps accessor names to paths.
func (d *StanfordBunny) Files() map[string]string { return files{}.add("path", d.Path()) }

// DemoICPPointClouds holds 3 binary PCD point clouds and an initial transformation log.
type DemoICPPointClouds struct{ *dataset.Template }

// NewDemoICPPointClouds fetches the ICP demo point clouds.
func NewDemoICPPointClouds(ctx context.Context, dataRoot string, opts ...dataset.Option) (*DemoICPPointClouds, error) {
	return build(ctx, demoICPPointClouds, dataRoot, opts, func(t *dataset.Template) *DemoICPPointClouds { return &DemoICPPointClouds{t} })
}

// Paths returns cloud_bin_{0..2}.pcd.
func (d *DemoICPPointClouds) Paths() []string {
	return underAll(d.Template, numbered("cloud_bin_%d.pcd", 3))
}

// PathAt returns the i-th point cloud.
func (d *DemoICPPointClouds) PathAt(i int) (string, error) { return pathAt(d.Paths(), i) }

// TransformationLogPath returns init.log.
func (d *DemoICPPointClouds) TransformationLogPath() string { return under(d.Template, "init.log") }

// Files maps accessor names to paths.
func (d *DemoICPPointClouds) Files() map[string]string {
	return files{}.list("paths", d.Paths()).add("transformation_log_path", d.TransformationLogPath())
}

// DemoColoredICPPointClouds holds 2 PLY fragments for colored ICP.
type DemoColoredICPPointClouds struct{ *dataset.Template }

// NewDemoColoredICPPointClouds fetches the colored ICP fragments.
func NewDemoColoredICPPointClouds(ctx context.Context, dataRoot string, opts ...dataset.Option) (*DemoColoredICPPointClouds, error) {
	return build(ctx, demoColoredICPPointClouds, dataRoot, opts, func(t *dataset.Template) *DemoColoredICPPointClouds {
		return &DemoColoredICPPointClouds{t}
	})
}

// Paths returns frag_115.ply and frag_116.ply.
func (d *DemoColoredICPPointClouds) Paths() []string {
	return underAll(d.Template, []string{"frag_115.ply", "frag_116.ply"})
}

// PathAt returns the i-th fragment.
func (d *DemoColoredICPPointClouds) PathAt(i int) (string, error) { return pathAt(d.Paths(), i) }

// Files maps accessor names to paths.
func (d *DemoColoredICPPointClouds) Files() map[string]string { return files{}.list("paths", d.Paths()) }

// DemoCropPointCloud holds a point cloud and a saved polygon selection.
type DemoCropPointCloud struct{ *dataset.Template }

// NewDemoCropPointCloud fetches the crop demo data.
func NewDemoCropPointCloud(ctx context.Context, dataRoot string, opts ...dataset.Option) (*DemoCropPointCloud, error) {
	return build(ctx, demoCropPointCloud, dataRoot, opts, func(t *dataset.Template) *DemoCropPointCloud { return &DemoCropPointCloud{t} })
}

// PointCloudPath returns fragment.ply.
func (d *DemoCropPointCloud) PointCloudPath() string { return under(d.Template, "fragment.ply") }

// CroppedJSONPath returns cropped.json.
func (d *DemoCropPointCloud) CroppedJSONPath() string { return under(d.Template, "cropped.json") }

// Files maps accessor names to paths.
func (d *DemoCropPointCloud) Files() map[string]string {
	return files{}.add("point_cloud_path", d.PointCloudPath()).add("cropped_json_path", d.CroppedJSONPath())
}

// DemoFeatureMatchingPointClouds holds 2 fragments with FPFH and L32D features.
type DemoFeatureMatchingPointClouds struct{ *dataset.Template }

// NewDemoFeatureMatchingPointClouds fetches the feature matching demo data.
func NewDemoFeatureMatchingPointClouds(ctx context.Context, dataRoot string, opts ...dataset.Option) (*DemoFeatureMatchingPointClouds, error) {
	return build(ctx, demoFeatureMatchingPointClouds, dataRoot, opts, func(t *dataset.Template) *DemoFeatureMatchingPointClouds {
		return &DemoFeatureMatchingPointClouds{t}
	})
}

// PointCloudPaths returns cloud_bin_{0,1}.pcd.
func (d *DemoFeatureMatchingPointClouds) PointCloudPaths() []string {
	return underAll(d.Template, numbered("cloud_bin_%d.pcd", 2))
}

// FPFHFeaturePaths returns cloud_bin_{0,1}.fpfh.bin.
func (d *DemoFeatureMatchingPointClouds) FPFHFeaturePaths() []string {
	return underAll(d.Template, numbered("cloud_bin_%d.fpfh.bin", 2))
}

// L32DFeaturePaths returns cloud_bin_{0,1}.d32.bin.
func (d *DemoFeatureMatchingPointClouds) L32DFeaturePaths() []string {
	return underAll(d.Template, numbered("cloud_bin_%d.d32.bin", 2))
}

// Files maps accessor names to paths.
func (d *DemoFeatureMatchingPointClouds) Files() map[string]string {
	return files{}.
		list("point_cloud_paths", d.PointCloudPaths()).
		list("fpfh_feature_paths", d.FPFHFeaturePaths()).
		list("l32d_feature_paths", d.L32DFeaturePaths())
}

// DemoPoseGraphOptimization holds a fragment and a global pose graph.
type DemoPoseGraphOptimization struct{ *dataset.Template }

// NewDemoPoseGraphOptimization fetches the pose graph demo data.
func NewDemoPoseGraphOptimization(ctx context.Context, dataRoot string, opts ...dataset.Option) (*DemoPoseGraphOptimization, error) {
	return build(ctx, demoPoseGraphOptimization, dataRoot, opts, func(t *dataset.Template) *DemoPoseGraphOptimization {
		return &DemoPoseGraphOptimization{t}
	})
}

// PoseGraphFragmentPath returns pose_graph_example_fragment.json.
func (d *DemoPoseGraphOptimization) PoseGraphFragmentPath() string {
	return under(d.Template, "pose_graph_example_fragment.json")
}

// PoseGraphGlobalPath returns pose_graph_example_global.json.
func (d *DemoPoseGraphOptimization) PoseGraphGlobalPath() string {
	return under(d.Template, "pose_graph_example_global.json")
}

// Files maps accessor names to paths.
func (d *DemoPoseGraphOptimization) Files() map[string]string {
	return files{}.
		add("pose_graph_fragment_path", d.PoseGraphFragmentPath()).
		add("pose_graph_global_path", d.PoseGraphGlobalPath())
}

// DemoCustomVisualization holds the custom visualization demo inputs.
type DemoCustomVisualization struct{ *dataset.Template }

// NewDemoCustomVisualization fetches the custom visualization demo data.
func NewDemoCustomVisualization(ctx context.Context, dataRoot string, opts ...dataset.Option) (*DemoCustomVisualization, error) {
	return build(ctx, demoCustomVisualization, dataRoot, opts, func(t *dataset.Template) *DemoCustomVisualization {
		return &DemoCustomVisualization{t}
	})
}

// PointCloudPath returns fragment.ply.
func (d *DemoCustomVisualization) PointCloudPath() string { return under(d.Template, "fragment.ply") }

// CameraTrajectoryPath returns camera_trajectory.json.
func (d *DemoCustomVisualization) CameraTrajectoryPath() string {
	return under(d.Template, "camera_trajectory.json")
}

// RenderOptionPath returns renderoption.json.
func (d *DemoCustomVisualization) RenderOptionPath() string { return under(d.Template, "renderoption.json") }

// Files maps accessor names to paths.
func (d *DemoCustomVisualization) Files() map[string]string {
	return files{}.
		add("point_cloud_path", d.PointCloudPath()).
		add("camera_trajectory_path", d.CameraTrajectoryPath()).
		add("render_option_path", d.RenderOptionPath())
}

// PCDPointCloud is a sample point cloud in PCD format.
type PCDPointCloud struct{ *dataset.Template }

// NewPCDPointCloud fetches fragment.pcd.
func NewPCDPointCloud(ctx context.Context, dataRoot string, opts ...dataset.Option) (*PCDPointCloud, error) {
	return build(ctx, pcdPointCloud, dataRoot, opts, func(t *dataset.Template) *PCDPointCloud { return &PCDPointCloud{t} })
}

// Path returns fragment.pcd.
func (d *PCDPointCloud) Path() string { return under(d.Template, "fragment.pcd") }

// Files maps accessor names to paths.
func (d *PCDPointCloud) Files() map[string]string { return files{}.add("path", d.Path()) }

// PLYPointCloud is a sample point cloud in PLY format.
type PLYPointCloud struct{ *dataset.Template }

// NewPLYPointCloud fetches fragment.ply.
func NewPLYPointCloud(ctx context.Context, dataRoot string, opts ...dataset.Option) (*PLYPointCloud, error) {
	return build(ctx, plyPointCloud, dataRoot, opts, func(t *dataset.Template) *PLYPointCloud { return &PLYPointCloud{t} })
}

// Path returns fragment.ply.
func (d *PLYPointCloud) Path() string { return under(d.Template, "fragment.ply") }

// Files maps accessor names to paths.
func (d *PLYPointCloud) Files() map[string]string { return files{}.add("path", d.Path()) }

// PTSPointCloud is a sample point cloud in PTS format.
type PTSPointCloud struct{ *dataset.Template }

// NewPTSPointCloud fetches point_cloud_sample1.pts.
func NewPTSPointCloud(ctx context.Context, dataRoot string, opts ...dataset.Option) (*PTSPointCloud, error) {
	return build(ctx, ptsPointCloud, dataRoot, opts, func(t *dataset.Template) *PTSPointCloud { return &PTSPointCloud{t} })
}

// Path returns point_cloud_sample1.pts.
func (d *PTSPointCloud) Path() string { return under(d.Template, "point_cloud_sample1.pts") }

// Files maps accessor names to paths.
func (d *PTSPointCloud) Files() map[string]string { return files{}.add("path", d.Path()) }

// EaglePointCloud is a colored eagle point cloud.
type EaglePointCloud struct{ *dataset.Template }

// NewEaglePointCloud fetches EaglePointCloud.ply.
func NewEaglePointCloud(ctx context.Context, dataRoot string, opts ...dataset.Option) (*EaglePointCloud, error) {
	return build(ctx, eaglePointCloud, dataRoot, opts, func(t *dataset.Template) *EaglePointCloud { return &EaglePointCloud{t} })
}

// Path returns EaglePointCloud.ply.
func (d *EaglePointCloud) Path() string { return under(d.Template, "EaglePointCloud.ply") }

// Files maps accessor names to paths.
func (d *EaglePointCloud) Files() map[string]string { return files{}.add("path", d.Path()) }

// LivingRoomPointClouds holds 57 living room fragments.
type LivingRoomPointClouds struct{ *dataset.Template }

// NewLivingRoomPointClouds fetches the living room fragments.
func NewLivingRoomPointClouds(ctx context.Context, dataRoot string, opts ...dataset.Option) (*LivingRoomPointClouds, error) {
	return build(ctx, livingRoomPointClouds, dataRoot, opts, func(t *dataset.Template) *LivingRoomPointClouds {
		return &LivingRoomPointClouds{t}
	})
}

// Paths returns cloud_bin_{0..56}.ply.
func (d *LivingRoomPointClouds) Paths() []string {
	return underAll(d.Template, numbered("cloud_bin_%d.ply", 57))
}

// PathAt returns the i-th fragment.
func (d *LivingRoomPointClouds) PathAt(i int) (string, error) { return pathAt(d.Paths(), i) }

// Files maps accessor names to paths.
func (d *LivingRoomPointClouds) Files() map[string]string { return files{}.list("paths", d.Paths()) }

// OfficePointClouds holds 53 office fragments.
type OfficePointClouds struct{ *dataset.Template }

// NewOfficePointClouds fetches the office fragments.
func NewOfficePointClouds(ctx context.Context, dataRoot string, opts ...dataset.Option) (*OfficePointClouds, error) {
	return build(ctx, officePointClouds, dataRoot, opts, func(t *dataset.Template) *OfficePointClouds { return &OfficePointClouds{t} })
}

// Paths returns cloud_bin_{0..52}.ply.
func (d *OfficePointClouds) Paths() []string {
	return underAll(d.Template, numbered("cloud_bin_%d.ply", 53))
}

// PathAt returns the i-th fragment.
func (d *OfficePointClouds) PathAt(i int) (string, error) { return pathAt(d.Paths(), i) }

// Files maps accessor names to paths.
func (d *OfficePointClouds) Files() map[string]string { return files{}.list("paths", d.Paths()) }
