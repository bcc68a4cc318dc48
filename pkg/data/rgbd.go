package data

import (
	"context"

	"github.com/glorpus-work/o3data/pkg/dataset"
)

// SampleNYURGBDImage is one color/depth pair from the NYU RGBD dataset.
type SampleNYURGBDImage struct{ *dataset.Template }

// NewSampleNYURGBDImage fetches the NYU sample.
func NewSampleNYURGBDImage(ctx context.Context, dataRoot string, opts ...dataset.Option) (*SampleNYURGBDImage, error) {
	return build(ctx, sampleNYURGBDImage, dataRoot, opts, func(t *dataset.Template) *SampleNYURGBDImage {
		return &SampleNYURGBDImage{t}
	})
}

// ColorPath returns NYU_color.ppm.
func (d *SampleNYURGBDImage) ColorPath() string { return under(d.Template, "NYU_color.ppm") }

// DepthPath returns NYU_depth.pgm.
func (d *SampleNYURGBDImage) DepthPath() string { return under(d.Template, "NYU_depth.pgm") }

// Files maps accessor names to paths.
func (d *SampleNYURGBDImage) Files() map[string]string {
	return files{}.add("color_path", d.ColorPath()).add("depth_path", d.DepthPath())
}

// SampleSUNRGBDImage is one color/depth pair from the SUN RGBD dataset.
type SampleSUNRGBDImage struct{ *dataset.Template }

// NewSampleSUNRGBDImage fetches the SUN sample.
func NewSampleSUNRGBDImage(ctx context.Context, dataRoot string, opts ...dataset.Option) (*SampleSUNRGBDImage, error) {
	return build(ctx, sampleSUNRGBDImage, dataRoot, opts, func(t *dataset.Template) *SampleSUNRGBDImage {
		return &SampleSUNRGBDImage{t}
	})
}

// ColorPath returns SUN_color.jpg.
func (d *SampleSUNRGBDImage) ColorPath() string { return under(d.Template, "SUN_color.jpg") }

// DepthPath returns SUN_depth.png.
func (d *SampleSUNRGBDImage) DepthPath() string { return under(d.Template, "SUN_depth.png") }

// Files maps accessor names to paths.
func (d *SampleSUNRGBDImage) Files() map[string]string {
	return files{}.add("color_path", d.ColorPath()).add("depth_path", d.DepthPath())
}

// SampleTUMRGBDImage is one color/depth pair from the TUM RGBD dataset.
type SampleTUMRGBDImage struct{ *dataset.Template }

// NewSampleTUMRGBDImage fetches the TUM sample.
func NewSampleTUMRGBDImage(ctx context.Context, dataRoot string, opts ...dataset.Option) (*SampleTUMRGBDImage, error) {
	return build(ctx, sampleTUMRGBDImage, dataRoot, opts, func(t *dataset.Template) *SampleTUMRGBDImage {
		return &SampleTUMRGBDImage{t}
	})
}

// ColorPath returns TUM_color.png.
func (d *SampleTUMRGBDImage) ColorPath() string { return under(d.Template, "TUM_color.png") }

// DepthPath returns TUM_depth.png.
func (d *SampleTUMRGBDImage) DepthPath() string { return under(d.Template, "TUM_depth.png") }

// Files maps accessor names to paths.
func (d *SampleTUMRGBDImage) Files() map[string]string {
	return files{}.add("color_path", d.ColorPath()).add("depth_path", d.DepthPath())
}

// SampleRedwoodRGBDImages is a 5 frame excerpt of Redwood living-room1.
type SampleRedwoodRGBDImages struct{ *dataset.Template }

// NewSampleRedwoodRGBDImages fetches the Redwood sample.
func NewSampleRedwoodRGBDImages(ctx context.Context, dataRoot string, opts ...dataset.Option) (*SampleRedwoodRGBDImages, error) {
	return build(ctx, sampleRedwoodRGBDImages, dataRoot, opts, func(t *dataset.Template) *SampleRedwoodRGBDImages {
		return &SampleRedwoodRGBDImages{t}
	})
}

// ColorPaths returns color/0000{0..4}.jpg.
func (d *SampleRedwoodRGBDImages) ColorPaths() []string {
	return underAll(d.Template, numbered("color/%05d.jpg", 5))
}

// DepthPaths returns depth/0000{0..4}.png.
func (d *SampleRedwoodRGBDImages) DepthPaths() []string {
	return underAll(d.Template, numbered("depth/%05d.png", 5))
}

// TrajectoryLogPath returns trajectory.log.
func (d *SampleRedwoodRGBDImages) TrajectoryLogPath() string { return under(d.Template, "trajectory.log") }

// OdometryLogPath returns odometry.log.
func (d *SampleRedwoodRGBDImages) OdometryLogPath() string { return under(d.Template, "odometry.log") }

// RGBDMatchPath returns rgbd.match.
func (d *SampleRedwoodRGBDImages) RGBDMatchPath() string { return under(d.Template, "rgbd.match") }

// ReconstructionPath returns example_tsdf_pcd.ply.
func (d *SampleRedwoodRGBDImages) ReconstructionPath() string {
	return under(d.Template, "example_tsdf_pcd.ply")
}

// CameraIntrinsicPath returns camera_primesense.json.
func (d *SampleRedwoodRGBDImages) CameraIntrinsicPath() string {
	return under(d.Template, "camera_primesense.json")
}

// Files maps accessor names to paths.
func (d *SampleRedwoodRGBDImages) Files() map[string]string {
	return files{}.
		list("color_paths", d.ColorPaths()).
		list("depth_paths", d.DepthPaths()).
		add("trajectory_log_path", d.TrajectoryLogPath()).
		add("odometry_log_path", d.OdometryLogPath()).
		add("rgbd_match_path", d.RGBDMatchPath()).
		add("reconstruction_path", d.ReconstructionPath()).
		add("camera_intrinsic_path", d.CameraIntrinsicPath())
}

var fountainColorFiles = []string{
	"0000010-000001228920.jpg", "0000031-000004096400.jpg", "0000044-000005871507.jpg",
	"0000064-000008602440.jpg", "0000110-000014883587.jpg", "0000156-000021164733.jpg",
	"0000200-000027172787.jpg", "0000215-000029220987.jpg", "0000255-000034682853.jpg",
	"0000299-000040690907.jpg", "0000331-000045060400.jpg", "0000368-000050112627.jpg",
	"0000412-000056120680.jpg", "0000429-000058441973.jpg", "0000474-000064586573.jpg",
	"0000487-000066361680.jpg", "0000526-000071687000.jpg", "0000549-000074827573.jpg",
	"0000582-000079333613.jpg", "0000630-000085887853.jpg", "0000655-000089301520.jpg",
	"0000703-000095855760.jpg", "0000722-000098450147.jpg", "0000771-000105140933.jpg",
	"0000792-000108008413.jpg", "0000818-000111558627.jpg", "0000849-000115791573.jpg",
	"0000883-000120434160.jpg", "0000896-000122209267.jpg", "0000935-000127534587.jpg",
	"0000985-000134361920.jpg", "0001028-000140233427.jpg", "0001061-000144739467.jpg",
}

var fountainDepthFiles = []string{
	"0000038-000001234662.png", "0000124-000004104418.png", "0000177-000005872988.png",
	"0000259-000008609267.png", "0000447-000014882686.png", "0000635-000021156105.png",
	"0000815-000027162570.png", "0000877-000029231463.png", "0001040-000034670651.png",
	"0001220-000040677116.png", "0001351-000045048488.png", "0001503-000050120614.png",
	"0001683-000056127079.png", "0001752-000058429557.png", "0001937-000064602868.png",
	"0001990-000066371438.png", "0002149-000071677149.png", "0002243-000074813859.png",
	"0002378-000079318707.png", "0002575-000085892450.png", "0002677-000089296113.png",
	"0002874-000095869855.png", "0002951-000098439288.png", "0003152-000105146507.png",
	"0003238-000108016262.png", "0003344-000111553403.png", "0003471-000115791298.png",
	"0003610-000120429623.png", "0003663-000122198194.png", "0003823-000127537274.png",
	"0004028-000134377970.png", "0004203-000140217589.png", "0004339-000144755807.png",
}

func prefixed(dir string, names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = dir + "/" + n
	}
	return out
}

// SampleFountainRGBDImages is a 33 frame excerpt of the Fountain RGBD dataset.
type SampleFountainRGBDImages struct{ *dataset.Template }

// NewSampleFountainRGBDImages fetches the Fountain sample.
func NewSampleFountainRGBDImages(ctx context.Context, dataRoot string, opts ...dataset.Option) (*SampleFountainRGBDImages, error) {
	return build(ctx, sampleFountainRGBDImages, dataRoot, opts, func(t *dataset.Template) *SampleFountainRGBDImages {
		return &SampleFountainRGBDImages{t}
	})
}

// ColorPaths returns the 33 image/*.jpg frames in capture order.
func (d *SampleFountainRGBDImages) ColorPaths() []string {
	return underAll(d.Template, prefixed("image", fountainColorFiles))
}

// DepthPaths returns the 33 depth/*.png frames in capture order.
func (d *SampleFountainRGBDImages) DepthPaths() []string {
	return underAll(d.Template, prefixed("depth", fountainDepthFiles))
}

// KeyframePosesLogPath returns scene/key.log.
func (d *SampleFountainRGBDImages) KeyframePosesLogPath() string { return under(d.Template, "scene/key.log") }

// ReconstructionPath returns scene/integrated.ply.
func (d *SampleFountainRGBDImages) ReconstructionPath() string {
	return under(d.Template, "scene/integrated.ply")
}

// Files maps accessor names to paths.
func (d *SampleFountainRGBDImages) Files() map[string]string {
	return files{}.
		list("color_paths", d.ColorPaths()).
		list("depth_paths", d.DepthPaths()).
		add("keyframe_poses_log_path", d.KeyframePosesLogPath()).
		add("reconstruction_path", d.ReconstructionPath())
}

// SampleL515Bag is a short RealSense L515 recording.
type SampleL515Bag struct{ *dataset.Template }

// NewSampleL515Bag fetches L515_test_s.bag.
func NewSampleL515Bag(ctx context.Context, dataRoot string, opts ...dataset.Option) (*SampleL515Bag, error) {
	return build(ctx, sampleL515Bag, dataRoot, opts, func(t *dataset.Template) *SampleL515Bag { return &SampleL515Bag{t} })
}

// Path returns L515_test_s.bag.
func (d *SampleL515Bag) Path() string { return under(d.Template, "L515_test_s.bag") }

// Files maps accessor names to paths.
func (d *SampleL515Bag) Files() map[string]string { return files{}.add("path", d.Path()) }
