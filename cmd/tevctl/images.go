package main

// checkerboard fills a single-channel image with 16px checker tiles.
func checkerboard(width, height uint32) []float32 {
	data := make([]float32, width*height)
	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			if ((x>>4)^(y>>4))&1 == 1 {
				data[y*width+x] = 1
			}
		}
	}
	return data
}

// uvGradient fills a three-channel image with U in red and V in green.
func uvGradient(width, height uint32) []float32 {
	data := make([]float32, 0, width*height*3)
	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			data = append(data, float32(x)/float32(width), float32(y)/float32(height), 0)
		}
	}
	return data
}
