package utils

import (
	"time"

	"github.com/briandowns/spinner"
	figure "github.com/common-nighthawk/go-figure"
)

var loading = spinner.New(spinner.CharSets[14], 100*time.Millisecond)

func DrawBanner() {
	figure.NewFigure("AWS COST REPORT", "", true).Print()
}

func StartSpinner() {
	loading.Suffix = " querying Cost Explorer..."
	loading.Start()
}

func StopSpinner() {
	loading.Stop()
}
