package qrsymbol

// capacityTable is indexed by version, then by RecoveryLevel (L, M, Q, H).
// ecCodewords is per block. codewordHint is only populated for versions 1-14.
var capacityTable = [41][4]capacityEntry{
	{},
	{
		{blocks1: 1, blocks2: 0, dataCodewords1: 19, dataCodewords2: 0, ecCodewords: 7, codewordHint: 24},
		{blocks1: 1, blocks2: 0, dataCodewords1: 16, dataCodewords2: 0, ecCodewords: 10, codewordHint: 20},
		{blocks1: 1, blocks2: 0, dataCodewords1: 13, dataCodewords2: 0, ecCodewords: 13, codewordHint: 15},
		{blocks1: 1, blocks2: 0, dataCodewords1: 9, dataCodewords2: 0, ecCodewords: 17, codewordHint: 10},
	},
	{
		{blocks1: 1, blocks2: 0, dataCodewords1: 34, dataCodewords2: 0, ecCodewords: 10, codewordHint: 49},
		{blocks1: 1, blocks2: 0, dataCodewords1: 28, dataCodewords2: 0, ecCodewords: 16, codewordHint: 40},
		{blocks1: 1, blocks2: 0, dataCodewords1: 22, dataCodewords2: 0, ecCodewords: 22, codewordHint: 31},
		{blocks1: 1, blocks2: 0, dataCodewords1: 16, dataCodewords2: 0, ecCodewords: 28, codewordHint: 20},
	},
	{
		{blocks1: 1, blocks2: 0, dataCodewords1: 55, dataCodewords2: 0, ecCodewords: 15, codewordHint: 79},
		{blocks1: 1, blocks2: 0, dataCodewords1: 44, dataCodewords2: 0, ecCodewords: 26, codewordHint: 60},
		{blocks1: 2, blocks2: 0, dataCodewords1: 17, dataCodewords2: 0, ecCodewords: 18, codewordHint: 49},
		{blocks1: 2, blocks2: 0, dataCodewords1: 13, dataCodewords2: 0, ecCodewords: 22, codewordHint: 31},
	},
	{
		{blocks1: 1, blocks2: 0, dataCodewords1: 80, dataCodewords2: 0, ecCodewords: 20, codewordHint: 113},
		{blocks1: 2, blocks2: 0, dataCodewords1: 32, dataCodewords2: 0, ecCodewords: 18, codewordHint: 84},
		{blocks1: 2, blocks2: 0, dataCodewords1: 24, dataCodewords2: 0, ecCodewords: 26, codewordHint: 69},
		{blocks1: 4, blocks2: 0, dataCodewords1: 9, dataCodewords2: 0, ecCodewords: 16, codewordHint: 46},
	},
	{
		{blocks1: 1, blocks2: 0, dataCodewords1: 108, dataCodewords2: 0, ecCodewords: 26, codewordHint: 154},
		{blocks1: 2, blocks2: 0, dataCodewords1: 43, dataCodewords2: 0, ecCodewords: 24, codewordHint: 116},
		{blocks1: 2, blocks2: 2, dataCodewords1: 15, dataCodewords2: 16, ecCodewords: 18, codewordHint: 95},
		{blocks1: 2, blocks2: 2, dataCodewords1: 11, dataCodewords2: 12, ecCodewords: 22, codewordHint: 63},
	},
	{
		{blocks1: 2, blocks2: 0, dataCodewords1: 68, dataCodewords2: 0, ecCodewords: 18, codewordHint: 194},
		{blocks1: 4, blocks2: 0, dataCodewords1: 27, dataCodewords2: 0, ecCodewords: 16, codewordHint: 151},
		{blocks1: 4, blocks2: 0, dataCodewords1: 19, dataCodewords2: 0, ecCodewords: 24, codewordHint: 122},
		{blocks1: 4, blocks2: 0, dataCodewords1: 15, dataCodewords2: 0, ecCodewords: 28, codewordHint: 81},
	},
	{
		{blocks1: 2, blocks2: 0, dataCodewords1: 78, dataCodewords2: 0, ecCodewords: 20, codewordHint: 244},
		{blocks1: 4, blocks2: 0, dataCodewords1: 31, dataCodewords2: 0, ecCodewords: 18, codewordHint: 188},
		{blocks1: 2, blocks2: 4, dataCodewords1: 14, dataCodewords2: 15, ecCodewords: 18, codewordHint: 154},
		{blocks1: 4, blocks2: 1, dataCodewords1: 13, dataCodewords2: 14, ecCodewords: 26, codewordHint: 101},
	},
	{
		{blocks1: 2, blocks2: 0, dataCodewords1: 97, dataCodewords2: 0, ecCodewords: 24, codewordHint: 299},
		{blocks1: 2, blocks2: 2, dataCodewords1: 38, dataCodewords2: 39, ecCodewords: 22, codewordHint: 229},
		{blocks1: 4, blocks2: 2, dataCodewords1: 18, dataCodewords2: 19, ecCodewords: 22, codewordHint: 183},
		{blocks1: 4, blocks2: 2, dataCodewords1: 14, dataCodewords2: 15, ecCodewords: 26, codewordHint: 123},
	},
	{
		{blocks1: 2, blocks2: 0, dataCodewords1: 116, dataCodewords2: 0, ecCodewords: 30, codewordHint: 354},
		{blocks1: 3, blocks2: 2, dataCodewords1: 36, dataCodewords2: 37, ecCodewords: 22, codewordHint: 267},
		{blocks1: 4, blocks2: 4, dataCodewords1: 16, dataCodewords2: 17, ecCodewords: 20, codewordHint: 223},
		{blocks1: 4, blocks2: 4, dataCodewords1: 12, dataCodewords2: 13, ecCodewords: 24, codewordHint: 145},
	},
	{
		{blocks1: 2, blocks2: 2, dataCodewords1: 68, dataCodewords2: 69, ecCodewords: 18, codewordHint: 418},
		{blocks1: 4, blocks2: 1, dataCodewords1: 43, dataCodewords2: 44, ecCodewords: 26, codewordHint: 319},
		{blocks1: 6, blocks2: 2, dataCodewords1: 19, dataCodewords2: 20, ecCodewords: 24, codewordHint: 262},
		{blocks1: 6, blocks2: 2, dataCodewords1: 15, dataCodewords2: 16, ecCodewords: 28, codewordHint: 176},
	},
	{
		{blocks1: 4, blocks2: 0, dataCodewords1: 81, dataCodewords2: 0, ecCodewords: 20, codewordHint: 485},
		{blocks1: 1, blocks2: 4, dataCodewords1: 50, dataCodewords2: 51, ecCodewords: 30, codewordHint: 368},
		{blocks1: 4, blocks2: 4, dataCodewords1: 22, dataCodewords2: 23, ecCodewords: 28, codewordHint: 299},
		{blocks1: 3, blocks2: 8, dataCodewords1: 12, dataCodewords2: 13, ecCodewords: 24, codewordHint: 207},
	},
	{
		{blocks1: 2, blocks2: 2, dataCodewords1: 92, dataCodewords2: 93, ecCodewords: 24, codewordHint: 555},
		{blocks1: 6, blocks2: 2, dataCodewords1: 36, dataCodewords2: 37, ecCodewords: 22, codewordHint: 421},
		{blocks1: 4, blocks2: 6, dataCodewords1: 20, dataCodewords2: 21, ecCodewords: 26, codewordHint: 351},
		{blocks1: 7, blocks2: 4, dataCodewords1: 14, dataCodewords2: 15, ecCodewords: 28, codewordHint: 236},
	},
	{
		{blocks1: 4, blocks2: 0, dataCodewords1: 107, dataCodewords2: 0, ecCodewords: 26, codewordHint: 624},
		{blocks1: 8, blocks2: 1, dataCodewords1: 37, dataCodewords2: 38, ecCodewords: 22, codewordHint: 479},
		{blocks1: 8, blocks2: 4, dataCodewords1: 20, dataCodewords2: 21, ecCodewords: 24, codewordHint: 398},
		{blocks1: 12, blocks2: 4, dataCodewords1: 11, dataCodewords2: 12, ecCodewords: 22, codewordHint: 275},
	},
	{
		{blocks1: 3, blocks2: 1, dataCodewords1: 115, dataCodewords2: 116, ecCodewords: 30, codewordHint: 707},
		{blocks1: 4, blocks2: 5, dataCodewords1: 40, dataCodewords2: 41, ecCodewords: 24, codewordHint: 531},
		{blocks1: 11, blocks2: 5, dataCodewords1: 16, dataCodewords2: 17, ecCodewords: 20, codewordHint: 447},
		{blocks1: 11, blocks2: 5, dataCodewords1: 12, dataCodewords2: 13, ecCodewords: 24, codewordHint: 302},
	},
	{
		{blocks1: 5, blocks2: 1, dataCodewords1: 87, dataCodewords2: 88, ecCodewords: 22, codewordHint: 0},
		{blocks1: 5, blocks2: 5, dataCodewords1: 41, dataCodewords2: 42, ecCodewords: 24, codewordHint: 0},
		{blocks1: 5, blocks2: 7, dataCodewords1: 24, dataCodewords2: 25, ecCodewords: 30, codewordHint: 0},
		{blocks1: 11, blocks2: 7, dataCodewords1: 12, dataCodewords2: 13, ecCodewords: 24, codewordHint: 0},
	},
	{
		{blocks1: 5, blocks2: 1, dataCodewords1: 98, dataCodewords2: 99, ecCodewords: 24, codewordHint: 0},
		{blocks1: 7, blocks2: 3, dataCodewords1: 45, dataCodewords2: 46, ecCodewords: 28, codewordHint: 0},
		{blocks1: 15, blocks2: 2, dataCodewords1: 19, dataCodewords2: 20, ecCodewords: 24, codewordHint: 0},
		{blocks1: 3, blocks2: 13, dataCodewords1: 15, dataCodewords2: 16, ecCodewords: 30, codewordHint: 0},
	},
	{
		{blocks1: 1, blocks2: 5, dataCodewords1: 107, dataCodewords2: 108, ecCodewords: 28, codewordHint: 0},
		{blocks1: 10, blocks2: 1, dataCodewords1: 46, dataCodewords2: 47, ecCodewords: 28, codewordHint: 0},
		{blocks1: 1, blocks2: 15, dataCodewords1: 22, dataCodewords2: 23, ecCodewords: 28, codewordHint: 0},
		{blocks1: 2, blocks2: 17, dataCodewords1: 14, dataCodewords2: 15, ecCodewords: 28, codewordHint: 0},
	},
	{
		{blocks1: 5, blocks2: 1, dataCodewords1: 120, dataCodewords2: 121, ecCodewords: 30, codewordHint: 0},
		{blocks1: 9, blocks2: 4, dataCodewords1: 43, dataCodewords2: 44, ecCodewords: 26, codewordHint: 0},
		{blocks1: 17, blocks2: 1, dataCodewords1: 22, dataCodewords2: 23, ecCodewords: 28, codewordHint: 0},
		{blocks1: 2, blocks2: 19, dataCodewords1: 14, dataCodewords2: 15, ecCodewords: 28, codewordHint: 0},
	},
	{
		{blocks1: 3, blocks2: 4, dataCodewords1: 113, dataCodewords2: 114, ecCodewords: 28, codewordHint: 0},
		{blocks1: 3, blocks2: 11, dataCodewords1: 44, dataCodewords2: 45, ecCodewords: 26, codewordHint: 0},
		{blocks1: 17, blocks2: 4, dataCodewords1: 21, dataCodewords2: 22, ecCodewords: 26, codewordHint: 0},
		{blocks1: 9, blocks2: 16, dataCodewords1: 13, dataCodewords2: 14, ecCodewords: 26, codewordHint: 0},
	},
	{
		{blocks1: 3, blocks2: 5, dataCodewords1: 107, dataCodewords2: 108, ecCodewords: 28, codewordHint: 0},
		{blocks1: 3, blocks2: 13, dataCodewords1: 41, dataCodewords2: 42, ecCodewords: 26, codewordHint: 0},
		{blocks1: 15, blocks2: 5, dataCodewords1: 24, dataCodewords2: 25, ecCodewords: 30, codewordHint: 0},
		{blocks1: 15, blocks2: 10, dataCodewords1: 15, dataCodewords2: 16, ecCodewords: 28, codewordHint: 0},
	},
	{
		{blocks1: 4, blocks2: 4, dataCodewords1: 116, dataCodewords2: 117, ecCodewords: 28, codewordHint: 0},
		{blocks1: 17, blocks2: 0, dataCodewords1: 42, dataCodewords2: 0, ecCodewords: 26, codewordHint: 0},
		{blocks1: 17, blocks2: 6, dataCodewords1: 22, dataCodewords2: 23, ecCodewords: 28, codewordHint: 0},
		{blocks1: 19, blocks2: 6, dataCodewords1: 16, dataCodewords2: 17, ecCodewords: 30, codewordHint: 0},
	},
	{
		{blocks1: 2, blocks2: 7, dataCodewords1: 111, dataCodewords2: 112, ecCodewords: 28, codewordHint: 0},
		{blocks1: 17, blocks2: 0, dataCodewords1: 46, dataCodewords2: 0, ecCodewords: 28, codewordHint: 0},
		{blocks1: 7, blocks2: 16, dataCodewords1: 24, dataCodewords2: 25, ecCodewords: 30, codewordHint: 0},
		{blocks1: 34, blocks2: 0, dataCodewords1: 13, dataCodewords2: 0, ecCodewords: 24, codewordHint: 0},
	},
	{
		{blocks1: 4, blocks2: 5, dataCodewords1: 121, dataCodewords2: 122, ecCodewords: 30, codewordHint: 0},
		{blocks1: 4, blocks2: 14, dataCodewords1: 47, dataCodewords2: 48, ecCodewords: 28, codewordHint: 0},
		{blocks1: 11, blocks2: 14, dataCodewords1: 24, dataCodewords2: 25, ecCodewords: 30, codewordHint: 0},
		{blocks1: 16, blocks2: 14, dataCodewords1: 15, dataCodewords2: 16, ecCodewords: 30, codewordHint: 0},
	},
	{
		{blocks1: 6, blocks2: 4, dataCodewords1: 117, dataCodewords2: 118, ecCodewords: 30, codewordHint: 0},
		{blocks1: 6, blocks2: 14, dataCodewords1: 45, dataCodewords2: 46, ecCodewords: 28, codewordHint: 0},
		{blocks1: 11, blocks2: 16, dataCodewords1: 24, dataCodewords2: 25, ecCodewords: 30, codewordHint: 0},
		{blocks1: 30, blocks2: 2, dataCodewords1: 16, dataCodewords2: 17, ecCodewords: 30, codewordHint: 0},
	},
	{
		{blocks1: 8, blocks2: 4, dataCodewords1: 106, dataCodewords2: 107, ecCodewords: 26, codewordHint: 0},
		{blocks1: 8, blocks2: 13, dataCodewords1: 47, dataCodewords2: 48, ecCodewords: 28, codewordHint: 0},
		{blocks1: 7, blocks2: 22, dataCodewords1: 24, dataCodewords2: 25, ecCodewords: 30, codewordHint: 0},
		{blocks1: 22, blocks2: 13, dataCodewords1: 15, dataCodewords2: 16, ecCodewords: 30, codewordHint: 0},
	},
	{
		{blocks1: 10, blocks2: 2, dataCodewords1: 114, dataCodewords2: 115, ecCodewords: 28, codewordHint: 0},
		{blocks1: 19, blocks2: 4, dataCodewords1: 46, dataCodewords2: 47, ecCodewords: 28, codewordHint: 0},
		{blocks1: 28, blocks2: 6, dataCodewords1: 22, dataCodewords2: 23, ecCodewords: 28, codewordHint: 0},
		{blocks1: 33, blocks2: 4, dataCodewords1: 16, dataCodewords2: 17, ecCodewords: 30, codewordHint: 0},
	},
	{
		{blocks1: 8, blocks2: 4, dataCodewords1: 122, dataCodewords2: 123, ecCodewords: 30, codewordHint: 0},
		{blocks1: 22, blocks2: 3, dataCodewords1: 45, dataCodewords2: 46, ecCodewords: 28, codewordHint: 0},
		{blocks1: 8, blocks2: 26, dataCodewords1: 23, dataCodewords2: 24, ecCodewords: 30, codewordHint: 0},
		{blocks1: 12, blocks2: 28, dataCodewords1: 15, dataCodewords2: 16, ecCodewords: 30, codewordHint: 0},
	},
	{
		{blocks1: 3, blocks2: 10, dataCodewords1: 117, dataCodewords2: 118, ecCodewords: 30, codewordHint: 0},
		{blocks1: 3, blocks2: 23, dataCodewords1: 45, dataCodewords2: 46, ecCodewords: 28, codewordHint: 0},
		{blocks1: 4, blocks2: 31, dataCodewords1: 24, dataCodewords2: 25, ecCodewords: 30, codewordHint: 0},
		{blocks1: 11, blocks2: 31, dataCodewords1: 15, dataCodewords2: 16, ecCodewords: 30, codewordHint: 0},
	},
	{
		{blocks1: 7, blocks2: 7, dataCodewords1: 116, dataCodewords2: 117, ecCodewords: 30, codewordHint: 0},
		{blocks1: 21, blocks2: 7, dataCodewords1: 45, dataCodewords2: 46, ecCodewords: 28, codewordHint: 0},
		{blocks1: 1, blocks2: 37, dataCodewords1: 23, dataCodewords2: 24, ecCodewords: 30, codewordHint: 0},
		{blocks1: 19, blocks2: 26, dataCodewords1: 15, dataCodewords2: 16, ecCodewords: 30, codewordHint: 0},
	},
	{
		{blocks1: 5, blocks2: 10, dataCodewords1: 115, dataCodewords2: 116, ecCodewords: 30, codewordHint: 0},
		{blocks1: 19, blocks2: 10, dataCodewords1: 47, dataCodewords2: 48, ecCodewords: 28, codewordHint: 0},
		{blocks1: 15, blocks2: 25, dataCodewords1: 24, dataCodewords2: 25, ecCodewords: 30, codewordHint: 0},
		{blocks1: 23, blocks2: 25, dataCodewords1: 15, dataCodewords2: 16, ecCodewords: 30, codewordHint: 0},
	},
	{
		{blocks1: 13, blocks2: 3, dataCodewords1: 115, dataCodewords2: 116, ecCodewords: 30, codewordHint: 0},
		{blocks1: 2, blocks2: 29, dataCodewords1: 46, dataCodewords2: 47, ecCodewords: 28, codewordHint: 0},
		{blocks1: 42, blocks2: 1, dataCodewords1: 24, dataCodewords2: 25, ecCodewords: 30, codewordHint: 0},
		{blocks1: 23, blocks2: 28, dataCodewords1: 15, dataCodewords2: 16, ecCodewords: 30, codewordHint: 0},
	},
	{
		{blocks1: 17, blocks2: 0, dataCodewords1: 115, dataCodewords2: 0, ecCodewords: 30, codewordHint: 0},
		{blocks1: 10, blocks2: 23, dataCodewords1: 46, dataCodewords2: 47, ecCodewords: 28, codewordHint: 0},
		{blocks1: 10, blocks2: 35, dataCodewords1: 24, dataCodewords2: 25, ecCodewords: 30, codewordHint: 0},
		{blocks1: 19, blocks2: 35, dataCodewords1: 15, dataCodewords2: 16, ecCodewords: 30, codewordHint: 0},
	},
	{
		{blocks1: 17, blocks2: 1, dataCodewords1: 115, dataCodewords2: 116, ecCodewords: 30, codewordHint: 0},
		{blocks1: 14, blocks2: 21, dataCodewords1: 46, dataCodewords2: 47, ecCodewords: 28, codewordHint: 0},
		{blocks1: 29, blocks2: 19, dataCodewords1: 24, dataCodewords2: 25, ecCodewords: 30, codewordHint: 0},
		{blocks1: 11, blocks2: 46, dataCodewords1: 15, dataCodewords2: 16, ecCodewords: 30, codewordHint: 0},
	},
	{
		{blocks1: 13, blocks2: 6, dataCodewords1: 115, dataCodewords2: 116, ecCodewords: 30, codewordHint: 0},
		{blocks1: 14, blocks2: 23, dataCodewords1: 46, dataCodewords2: 47, ecCodewords: 28, codewordHint: 0},
		{blocks1: 44, blocks2: 7, dataCodewords1: 24, dataCodewords2: 25, ecCodewords: 30, codewordHint: 0},
		{blocks1: 59, blocks2: 1, dataCodewords1: 16, dataCodewords2: 17, ecCodewords: 30, codewordHint: 0},
	},
	{
		{blocks1: 12, blocks2: 7, dataCodewords1: 121, dataCodewords2: 122, ecCodewords: 30, codewordHint: 0},
		{blocks1: 12, blocks2: 26, dataCodewords1: 47, dataCodewords2: 48, ecCodewords: 28, codewordHint: 0},
		{blocks1: 39, blocks2: 14, dataCodewords1: 24, dataCodewords2: 25, ecCodewords: 30, codewordHint: 0},
		{blocks1: 22, blocks2: 41, dataCodewords1: 15, dataCodewords2: 16, ecCodewords: 30, codewordHint: 0},
	},
	{
		{blocks1: 6, blocks2: 14, dataCodewords1: 121, dataCodewords2: 122, ecCodewords: 30, codewordHint: 0},
		{blocks1: 6, blocks2: 34, dataCodewords1: 47, dataCodewords2: 48, ecCodewords: 28, codewordHint: 0},
		{blocks1: 46, blocks2: 10, dataCodewords1: 24, dataCodewords2: 25, ecCodewords: 30, codewordHint: 0},
		{blocks1: 2, blocks2: 64, dataCodewords1: 15, dataCodewords2: 16, ecCodewords: 30, codewordHint: 0},
	},
	{
		{blocks1: 17, blocks2: 4, dataCodewords1: 122, dataCodewords2: 123, ecCodewords: 30, codewordHint: 0},
		{blocks1: 29, blocks2: 14, dataCodewords1: 46, dataCodewords2: 47, ecCodewords: 28, codewordHint: 0},
		{blocks1: 49, blocks2: 10, dataCodewords1: 24, dataCodewords2: 25, ecCodewords: 30, codewordHint: 0},
		{blocks1: 24, blocks2: 46, dataCodewords1: 15, dataCodewords2: 16, ecCodewords: 30, codewordHint: 0},
	},
	{
		{blocks1: 4, blocks2: 18, dataCodewords1: 122, dataCodewords2: 123, ecCodewords: 30, codewordHint: 0},
		{blocks1: 13, blocks2: 32, dataCodewords1: 46, dataCodewords2: 47, ecCodewords: 28, codewordHint: 0},
		{blocks1: 48, blocks2: 14, dataCodewords1: 24, dataCodewords2: 25, ecCodewords: 30, codewordHint: 0},
		{blocks1: 42, blocks2: 32, dataCodewords1: 15, dataCodewords2: 16, ecCodewords: 30, codewordHint: 0},
	},
	{
		{blocks1: 20, blocks2: 4, dataCodewords1: 117, dataCodewords2: 118, ecCodewords: 30, codewordHint: 0},
		{blocks1: 40, blocks2: 7, dataCodewords1: 47, dataCodewords2: 48, ecCodewords: 28, codewordHint: 0},
		{blocks1: 43, blocks2: 22, dataCodewords1: 24, dataCodewords2: 25, ecCodewords: 30, codewordHint: 0},
		{blocks1: 10, blocks2: 67, dataCodewords1: 15, dataCodewords2: 16, ecCodewords: 30, codewordHint: 0},
	},
	{
		{blocks1: 19, blocks2: 6, dataCodewords1: 118, dataCodewords2: 119, ecCodewords: 30, codewordHint: 0},
		{blocks1: 18, blocks2: 31, dataCodewords1: 47, dataCodewords2: 48, ecCodewords: 28, codewordHint: 0},
		{blocks1: 34, blocks2: 34, dataCodewords1: 24, dataCodewords2: 25, ecCodewords: 30, codewordHint: 0},
		{blocks1: 20, blocks2: 61, dataCodewords1: 15, dataCodewords2: 16, ecCodewords: 30, codewordHint: 0},
	},
}

var alignmentCenters = [41][]int{
	nil,
	{},
	{6, 18},
	{6, 22},
	{6, 26},
	{6, 30},
	{6, 34},
	{6, 22, 38},
	{6, 24, 42},
	{6, 26, 46},
	{6, 28, 50},
	{6, 30, 54},
	{6, 32, 58},
	{6, 34, 62},
	{6, 26, 46, 66},
	{6, 26, 48, 70},
	{6, 26, 50, 74},
	{6, 30, 54, 78},
	{6, 30, 56, 82},
	{6, 30, 58, 86},
	{6, 34, 62, 90},
	{6, 28, 50, 72, 94},
	{6, 26, 50, 74, 98},
	{6, 30, 54, 78, 102},
	{6, 28, 54, 80, 106},
	{6, 32, 58, 84, 110},
	{6, 30, 58, 86, 114},
	{6, 34, 62, 90, 118},
	{6, 26, 50, 74, 98, 122},
	{6, 30, 54, 78, 102, 126},
	{6, 26, 52, 78, 104, 130},
	{6, 30, 56, 82, 108, 134},
	{6, 34, 60, 86, 112, 138},
	{6, 30, 58, 86, 114, 142},
	{6, 34, 62, 90, 118, 146},
	{6, 30, 54, 78, 102, 126, 150},
	{6, 24, 50, 76, 102, 128, 154},
	{6, 28, 54, 80, 106, 132, 158},
	{6, 32, 58, 84, 110, 136, 162},
	{6, 26, 54, 82, 110, 138, 166},
	{6, 30, 58, 86, 114, 142, 170},
}

// versionInfo holds the BCH(18,6) version information for versions 7-40.
var versionInfo = [41]uint32{
	7:  0x07c94,
	8:  0x085bc,
	9:  0x09a99,
	10: 0x0a4d3,
	11: 0x0bbf6,
	12: 0x0c762,
	13: 0x0d847,
	14: 0x0e60d,
	15: 0x0f928,
	16: 0x10b78,
	17: 0x1145d,
	18: 0x12a17,
	19: 0x13532,
	20: 0x149a6,
	21: 0x15683,
	22: 0x168c9,
	23: 0x177ec,
	24: 0x18ec4,
	25: 0x191e1,
	26: 0x1afab,
	27: 0x1b08e,
	28: 0x1cc1a,
	29: 0x1d33f,
	30: 0x1ed75,
	31: 0x1f250,
	32: 0x209d5,
	33: 0x216f0,
	34: 0x228ba,
	35: 0x2379f,
	36: 0x24b0b,
	37: 0x2542e,
	38: 0x26a64,
	39: 0x27541,
	40: 0x28c69,
}

// functionModules is the number of modules used by function patterns,
// excluding format and version information.
var functionModules = [41]int{
	0,
	202, 235, 243, 251, 259, 267, 390, 398, 406, 414,
	422, 430, 438, 611, 619, 627, 635, 643, 651, 659,
	882, 890, 898, 906, 914, 922, 930, 1203, 1211, 1219,
	1227, 1235, 1243, 1251, 1574, 1582, 1590, 1598, 1606, 1614,
}
