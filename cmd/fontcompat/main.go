package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/AkimioJR/fontcompat/font"
	"github.com/sirupsen/logrus"
)

var (
	dbPath                = flag.String("db", "", "Path to the font index file, if not specified it will rebuild the index")
	savePath              = flag.String("save", "", "Save the built index to this path")
	customFontsDir        = flag.String("fontdir", "", "Path to the font dir in order to build the index, use ',' to split it")
	withSystemDefaultFont = flag.Bool("system", true, "Include system default fonts when building the index")
	familyName            = flag.String("family", "", "Font family to resolve")
	targetWeight          = flag.Int("weight", font.WeightNormal, "Target font weight")
	targetItalic          = flag.Bool("italic", false, "Target italic style")
	tempDir               = flag.String("tmp", "", "Directory for scratch files")
	verbose               = flag.Bool("v", false, "Verbose output")
	list                  = flag.Bool("list", false, "List indexed families and exit")
)

func logger(err error) bool {
	switch err.(type) {
	case *font.InfoMsg:
		logrus.Info(err.Error())
	case *font.WarningMsg:
		logrus.Warn(err.Error())
	default:
		logrus.Error(err.Error())
	}
	return true
}

func main() {
	flag.Parse()
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	idx := font.NewFamilyIndex()
	if *dbPath != "" {
		if err := idx.LoadIndex(*dbPath); err != nil {
			logrus.WithError(err).Fatal("load index")
		}
	} else {
		opts := []font.Option{font.WithCheckErr(logger)}
		if *withSystemDefaultFont {
			opts = append(opts, font.WithSystemFonts())
		}
		if err := idx.BuildIndex(strings.Split(*customFontsDir, ","), opts...); err != nil {
			logrus.WithError(err).Fatal("build index")
		}
	}
	if *savePath != "" {
		if err := idx.SaveIndex(*savePath); err != nil {
			logrus.WithError(err).Fatal("save index")
		}
	}

	if *list {
		for _, name := range idx.Families() {
			fmt.Println(name)
		}
		return
	}
	if *familyName == "" {
		flag.Usage()
		os.Exit(2)
	}

	fam, ok := idx.Family(*familyName)
	if !ok {
		logrus.Fatalf("font family %q not found", *familyName)
	}
	logrus.WithField("entries", len(fam.Entries)).Debugf("found family %q", fam.Name)

	target := font.Style{Weight: *targetWeight, Italic: *targetItalic}
	c := font.NewCompat(font.WithTempDir(*tempDir), font.WithCheckErr(logger))
	h, ok := c.RealizeFamily(context.Background(), font.FileResources{}, fam, target.Italic, target.Weight)
	if !ok {
		logrus.Fatalf("failed to load %q %s", fam.Name, target)
	}
	back, ok := c.LookupFamily(h)
	if !ok || back != fam {
		logrus.Fatal("font handle is not associated with its family")
	}

	sub, err := h.Subfamily()
	if err != nil {
		sub = "?"
	}
	fmt.Printf("%s %s: %d glyphs (handle #%d)\n", fam.Name, sub, h.NumGlyphs(), h.ID())
}
