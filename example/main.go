package main

import (
	"fmt"
	"log"
	"os"

	"github.com/RashadAnsari/qrsymbol"
)

func main() {
	qr, err := qrsymbol.New("https://rashadansari.github.io", qrsymbol.Highest)
	if err != nil {
		log.Fatal(err.Error())
	}

	fmt.Printf("version %d-%s, %dx%d modules, mask %d\n",
		qr.Version(), qr.Level(), qr.Size(), qr.Size(), qr.Mask())

	writeToFile("qr.bmp", func(_ int) ([]byte, error) { return qr.BMP(), nil })
	writeToFile("qr.png", qr.PNG)
	writeToFile("qr.jpeg", qr.JPEG)
	writeToFile("qr.svg", qr.SVG)
	writeToFile("qr.pdf", qr.PDF)

	fmt.Println(qr.BMPBase64())
	fmt.Println("----------")
	stdoutBase64(qrsymbol.MediaTypePNG, qr.PNG)
	fmt.Println("----------")
	fmt.Print(qr.String())
}

func writeToFile(fileName string, FormatFunc func(_ int) ([]byte, error)) {
	size := 500
	fileMode := os.FileMode(0644)

	bytes, err := FormatFunc(size)
	if err != nil {
		log.Fatal(err.Error())
	}

	if err := os.WriteFile(fileName, bytes, fileMode); err != nil {
		log.Fatal(err.Error())
	}
}

func stdoutBase64(mediaType string, FormatFunc func(_ int) ([]byte, error)) {
	size := 500

	bytes, err := FormatFunc(size)
	if err != nil {
		log.Fatal(err.Error())
	}

	fmt.Println(qrsymbol.DataURI(mediaType, bytes))
}
