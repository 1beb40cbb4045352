package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/rf-modding/vmeshconv/converter"
	"github.com/rf-modding/vmeshconv/gltfutil"
	"github.com/rf-modding/vmeshconv/v3mc"
)

func defaultConfigFile(input string) string {
	return input[0:len(input)-len(filepath.Ext(input))] + ".vmeshconv.yaml"
}

func writeBones(bones []*v3mc.Bone, output string) error {
	w, err := os.Create(output)
	if err != nil {
		return err
	}
	defer w.Close()
	return v3mc.WriteBones(bones, w)
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s input.glb\n", os.Args[0])
		flag.PrintDefaults()
	}
	outDir := flag.String("out", "", "output directory (default: input directory)")
	skinName := flag.String("skin", "", "skin name (default: first skin)")
	bonesFile := flag.String("bones", "", "write the mesh-file bone section to this file")
	confFile := flag.String("config", "", "conversion config file")
	verbose := flag.Bool("v", false, "print the resolved bone hierarchy")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return
	}
	input := flag.Arg(0)

	conf := &converter.Config{}
	confPath := *confFile
	if confPath == "" {
		confPath = defaultConfigFile(input)
		if _, err := os.Stat(confPath); err != nil {
			confPath = ""
		}
	}
	if confPath != "" {
		c, err := converter.LoadConfig(confPath)
		if err != nil {
			log.Fatal(err)
		}
		conf = c
	}
	if conf.Skin == "" {
		conf.Skin = *skinName
	}
	if conf.OutputDir == "" {
		conf.OutputDir = *outDir
	}
	if conf.OutputDir == "" {
		conf.OutputDir = filepath.Dir(input)
	}

	doc, err := gltfutil.Load(input)
	if err != nil {
		log.Fatal(err)
	}

	skin := gltfutil.FindSkin(doc, conf.Skin)
	if skin == nil {
		log.Fatalf("no skin %q in %s", conf.Skin, input)
	}

	bones, err := converter.ConvertBones(doc, skin)
	if err != nil {
		log.Fatal(err)
	}
	if *verbose {
		for i, b := range bones {
			log.Printf("bone %d: %s (parent %d)", i, b.Name, b.ParentIndex)
		}
	}
	if *bonesFile != "" {
		if err := writeBones(bones, *bonesFile); err != nil {
			log.Fatal(err)
		}
		log.Print("out: ", *bonesFile)
	}

	conv := converter.NewGLTFToRFAConverter(nil)
	for index, anim := range doc.Animations {
		name := converter.AnimationName(anim, index)
		if !conf.AnimationEnabled(name) {
			continue
		}
		if err := conv.ConvertToFile(doc, anim, index, skin, conf.OutputDir); err != nil {
			log.Fatal(err)
		}
	}
}
