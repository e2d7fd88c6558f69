package resample

// scaleNearest picks, for every destination pixel, the source pixel whose
// area contains the destination pixel center. Integer math keeps the mapping
// exact when the sizes match.
func scaleNearest(dst, src []byte, srcW, srcH, depth, dstW, dstH int) {
	xs := make([]int, dstW)
	for dx := 0; dx < dstW; dx++ {
		xs[dx] = min((2*dx+1)*srcW/(2*dstW), srcW-1) * depth
	}

	for dy := 0; dy < dstH; dy++ {
		sy := min((2*dy+1)*srcH/(2*dstH), srcH-1)
		srcRow := src[sy*srcW*depth : (sy+1)*srcW*depth]
		dstRow := dst[dy*dstW*depth : (dy+1)*dstW*depth]
		for dx, sx := range xs {
			copy(dstRow[dx*depth:dx*depth+depth], srcRow[sx:sx+depth])
		}
	}
}
