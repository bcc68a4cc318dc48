// Package data is the catalog of built-in sample datasets.
//
// Every dataset embeds *dataset.Template and adds accessors that return
// paths below its extract directory. Constructing a dataset fetches it
// unless dataset.WithoutFetch is passed.
package data

import "github.com/glorpus-work/o3data/pkg/dataset"

const releaseBase = "https://github.com/isl-org/open3d_downloads/releases/download/"

// release returns the mirror list for a file published on the open3d_downloads releases page.
func release(tag, filename string) []string {
	return []string{releaseBase + tag + "/" + filename}
}

// Sources with an empty checksum are verified only by their mirror's
// transport; pin them through the config file's datasets section.
var (
	open3DSampleData = dataset.Descriptor{
		Prefix: "Open3DSampleData",
		Sources: []dataset.Source{{
			Checksum: "sha256:dbe17919b81a39133c1dc37320768fe055c542e873d5f3a8ac5861cc385234e0",
			Mirrors:  release("00.14.01_sample_data", "open3d_sample_data_00140100.zip"),
		}},
		Description: "Legacy bundle of Open3D test data: point clouds, meshes, images and trajectories.",
	}
	redwoodLivingRoom = dataset.Descriptor{
		Prefix: "RedwoodLivingRoom",
		Sources: []dataset.Source{{
			Checksum: "sha256:4bb14c4f15cae1d35cb77ef8a81806e5ad1aa04aedbdb8742e2d3927b0a3bf95",
			Mirrors:  release("data", "ICLNUIM_LivingRoomFragments.zip"),
		}},
		Description: "3 point cloud fragments of the ICL-NUIM living room scene in PCD format.",
	}
	stanfordBunny = dataset.Descriptor{
		Prefix: "StanfordBunny",
		Sources: []dataset.Source{{
			Checksum: "sha256:b1acc63bece78444aa2e15bdcc72371a201279b98c6f5d4b74c993d02f0566fe",
			Mirrors:  release("data-bunny", "Bunny.ply"),
		}},
		NoExtract:   true,
		Description: "The Stanford bunny point cloud in PLY format.",
	}
	demoICPPointClouds = dataset.Descriptor{
		Prefix:      "DemoICPPointClouds",
		Sources:     []dataset.Source{{Mirrors: release("20220201-data", "DemoICPPointClouds.zip")}},
		Description: "3 point clouds of binary PCD format. This dataset is used in Open3D for ICP demo.",
	}
	demoColoredICPPointClouds = dataset.Descriptor{
		Prefix:      "DemoColoredICPPointClouds",
		Sources:     []dataset.Source{{Mirrors: release("20220201-data", "DemoColoredICPPointClouds.zip")}},
		Description: "2 point clouds of PLY format. This dataset is used in Open3D for colored ICP demo.",
	}
	demoCropPointCloud = dataset.Descriptor{
		Prefix:      "DemoCropPointCloud",
		Sources:     []dataset.Source{{Mirrors: release("20220201-data", "DemoCropPointCloud.zip")}},
		Description: "Point cloud and cropped.json (a saved selected polygon volume file). This dataset is used in Open3D for point cloud crop demo.",
	}
	demoFeatureMatchingPointClouds = dataset.Descriptor{
		Prefix:      "DemoFeatureMatchingPointClouds",
		Sources:     []dataset.Source{{Mirrors: release("20220201-data", "DemoFeatureMatchingPointClouds.zip")}},
		Description: "Sample set of 2 point cloud fragments and their respective FPFH and L32D features. This dataset is used in Open3D for point cloud feature matching demo.",
	}
	demoPoseGraphOptimization = dataset.Descriptor{
		Prefix:      "DemoPoseGraphOptimization",
		Sources:     []dataset.Source{{Mirrors: release("20220201-data", "DemoPoseGraphOptimization.zip")}},
		Description: "Sample fragment pose graph and global pose graph. This dataset is used in Open3D for pose graph optimization demo.",
	}
	demoCustomVisualization = dataset.Descriptor{
		Prefix:      "DemoCustomVisualization",
		Sources:     []dataset.Source{{Mirrors: release("20220301-data", "DemoCustomVisualization.zip")}},
		Description: "Point cloud, camera trajectory and render option files used in Open3D for the custom visualization demo.",
	}
	pcdPointCloud = dataset.Descriptor{
		Prefix:      "PCDPointCloud",
		Sources:     []dataset.Source{{Mirrors: release("20220201-data", "PCDPointCloud.zip")}},
		Description: "Sample point cloud fragment in PCD format.",
	}
	plyPointCloud = dataset.Descriptor{
		Prefix:      "PLYPointCloud",
		Sources:     []dataset.Source{{Mirrors: release("20220201-data", "PLYPointCloud.zip")}},
		Description: "Sample point cloud fragment in PLY format.",
	}
	ptsPointCloud = dataset.Descriptor{
		Prefix:      "PTSPointCloud",
		Sources:     []dataset.Source{{Mirrors: release("20220301-data", "PTSPointCloud.zip")}},
		Description: "Sample point cloud in PTS format.",
	}
	sampleNYURGBDImage = dataset.Descriptor{
		Prefix:      "SampleNYURGBDImage",
		Sources:     []dataset.Source{{Mirrors: release("20220201-data", "SampleNYURGBDImage.zip")}},
		Description: "Color image NYU_color.ppm and depth image NYU_depth.pgm sample from NYU RGBD dataset.",
	}
	sampleSUNRGBDImage = dataset.Descriptor{
		Prefix:      "SampleSUNRGBDImage",
		Sources:     []dataset.Source{{Mirrors: release("20220201-data", "SampleSUNRGBDImage.zip")}},
		Description: "Color image SUN_color.jpg and depth image SUN_depth.png sample from SUN RGBD dataset.",
	}
	sampleTUMRGBDImage = dataset.Descriptor{
		Prefix:      "SampleTUMRGBDImage",
		Sources:     []dataset.Source{{Mirrors: release("20220201-data", "SampleTUMRGBDImage.zip")}},
		Description: "Color image TUM_color.png and depth image TUM_depth.png sample from TUM RGBD dataset.",
	}
	sampleRedwoodRGBDImages = dataset.Descriptor{
		Prefix:      "SampleRedwoodRGBDImages",
		Sources:     []dataset.Source{{Mirrors: release("20220301-data", "SampleRedwoodRGBDImages.zip")}},
		Description: "Sample set of 5 color and depth images from Redwood RGBD living-room1 dataset, with trajectory, odometry and reconstruction files.",
	}
	sampleFountainRGBDImages = dataset.Descriptor{
		Prefix:      "SampleFountainRGBDImages",
		Sources:     []dataset.Source{{Mirrors: release("20220201-data", "SampleFountainRGBDImages.zip")}},
		Description: "Sample set of 33 color and depth images from the Fountain RGBD dataset, with key frame poses and a reconstruction.",
	}
	sampleL515Bag = dataset.Descriptor{
		Prefix:      "SampleL515Bag",
		Sources:     []dataset.Source{{Mirrors: release("20220301-data", "L515_test_s.bag")}},
		NoExtract:   true,
		Description: "Sample L515 bag file recorded with an Intel RealSense L515 camera.",
	}
	eaglePointCloud = dataset.Descriptor{
		Prefix:      "EaglePointCloud",
		Sources:     []dataset.Source{{Mirrors: release("20220201-data", "EaglePointCloud.ply")}},
		NoExtract:   true,
		Description: "Eagle colored point cloud.",
	}
	armadilloMesh = dataset.Descriptor{
		Prefix:      "ArmadilloMesh",
		Sources:     []dataset.Source{{Mirrors: release("20220201-data", "ArmadilloMesh.ply")}},
		NoExtract:   true,
		Description: "The armadillo mesh from Stanford in PLY format.",
	}
	bunnyMesh = dataset.Descriptor{
		Prefix: "BunnyMesh",
		Sources: []dataset.Source{{
			Checksum: "568f871d1a221ba6627569f1e6f9a3f2",
			Mirrors:  release("20220201-data", "BunnyMesh.ply"),
		}},
		NoExtract:   true,
		Description: "The bunny triangle mesh from Stanford in PLY format.",
	}
	knotMesh = dataset.Descriptor{
		Prefix:      "KnotMesh",
		Sources:     []dataset.Source{{Mirrors: release("20220201-data", "KnotMesh.ply")}},
		NoExtract:   true,
		Description: "A 3D mobius knot mesh in PLY format.",
	}
	monkeyModel = dataset.Descriptor{
		Prefix:      "MonkeyModel",
		Sources:     []dataset.Source{{Mirrors: release("20220301-data", "MonkeyModel.zip")}},
		Description: "The monkey model with albedo, normal, roughness, metallic and ambient occlusion textures.",
	}
	swordModel = dataset.Descriptor{
		Prefix:      "SwordModel",
		Sources:     []dataset.Source{{Mirrors: release("20220301-data", "SwordModel.zip")}},
		Description: "The sword model with base color, normal, roughness and metallic textures.",
	}
	crateModel = dataset.Descriptor{
		Prefix:      "CrateModel",
		Sources:     []dataset.Source{{Mirrors: release("20220301-data", "CrateModel.zip")}},
		Description: "The crate model with a texture image.",
	}
	juneauImage = dataset.Descriptor{
		Prefix:      "JuneauImage",
		Sources:     []dataset.Source{{Mirrors: release("20220201-data", "JuneauImage.jpg")}},
		NoExtract:   true,
		Description: "An image of the Juneau city in JPG format.",
	}
	livingRoomPointClouds = dataset.Descriptor{
		Prefix:      "LivingRoomPointClouds",
		Sources:     []dataset.Source{{Mirrors: release("20220301-data", "LivingRoomPointClouds.zip")}},
		Description: "57 point cloud fragments of the Augmented ICL-NUIM living room scene in PLY format.",
	}
	officePointClouds = dataset.Descriptor{
		Prefix:      "OfficePointClouds",
		Sources:     []dataset.Source{{Mirrors: release("20220301-data", "OfficePointClouds.zip")}},
		Description: "53 point cloud fragments of the Augmented ICL-NUIM office scene in PLY format.",
	}
)
