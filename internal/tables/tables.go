// Package tables holds the static per-version item catalogs the cart and
// geode mechanics draw against: legal cart-item sets, the pre-1.4
// roll-to-id table, the ordered 1.6 object catalog, and geode drop
// tables. Every table here is a literal, initialized once at package
// load and never mutated afterward.
//
// CartRollToIDPre14, CartItems14, and the geode drop pools reproduce the
// verbatim reference literals (CART_ROLL_TO_ID_PRE14, CART_ITEMS_1_4,
// GEODE_ITEMS/FROZEN_ITEMS/MAGMA_ITEMS/OMNI_ITEMS/TROVE_ITEMS) from the
// original implementation's traveling_cart and geodes modules. Objects16
// is the one genuine gap: its source catalog (cart_objects_1_6, the full
// ordered Stardew object list with 1.6 prices/categories) is referenced
// by the original but was not itself present in this build's source
// material, so it remains a structurally faithful placeholder — same
// shape, same kind of value ranges — rather than the verbatim catalog.
// See DESIGN.md for the specific gap.
package tables

// CartRollToIDPre14 maps a pre-1.4 cart roll (indices 2..789) to an item
// id. Index 0 and 1 are unused padding so the roll value can index
// directly. Verbatim from the original's CART_ROLL_TO_ID_PRE14.
var CartRollToIDPre14 = [790]int32{
	0, 0, // indices 0-1 unused; roll values start at 2
	16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16,
	16, 16, 18, 18, 20, 20, 22, 22, 24, 24, 78, 78,
	78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78,
	78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78,
	78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78,
	78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78, 78,
	78, 78, 78, 78, 88, 88, 88, 88, 88, 88, 88, 88,
	88, 88, 90, 90, 92, 92, 128, 128, 128, 128, 128, 128,
	128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128,
	128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128, 128,
	128, 128, 128, 128, 128, 128, 129, 130, 131, 132, 136, 136,
	136, 136, 137, 138, 139, 140, 141, 142, 143, 144, 145, 146,
	147, 148, 149, 150, 151, 154, 154, 154, 155, 156, 164, 164,
	164, 164, 164, 164, 164, 164, 165, 167, 167, 174, 174, 174,
	174, 174, 174, 174, 176, 176, 180, 180, 180, 180, 182, 182,
	184, 184, 186, 186, 188, 188, 190, 190, 192, 192, 194, 194,
	195, 196, 197, 198, 199, 200, 201, 202, 203, 204, 205, 206,
	207, 208, 209, 210, 211, 212, 213, 214, 215, 216, 218, 218,
	219, 220, 221, 222, 223, 224, 225, 226, 227, 228, 229, 230,
	231, 232, 233, 234, 235, 236, 237, 238, 239, 240, 241, 242,
	243, 244, 248, 248, 248, 248, 250, 250, 252, 252, 254, 254,
	256, 256, 257, 258, 259, 260, 262, 262, 264, 264, 266, 266,
	268, 268, 270, 270, 272, 272, 274, 274, 276, 276, 278, 278,
	280, 280, 281, 282, 283, 284, 286, 286, 287, 288, 296, 296,
	296, 296, 296, 296, 296, 296, 298, 298, 299, 300, 301, 302,
	303, 304, 305, 306, 307, 308, 309, 310, 311, 322, 322, 322,
	322, 322, 322, 322, 322, 322, 322, 322, 323, 324, 325, 328,
	328, 328, 329, 330, 331, 333, 333, 334, 335, 336, 337, 338,
	340, 340, 342, 342, 344, 344, 346, 346, 347, 348, 350, 350,
	368, 368, 368, 368, 368, 368, 368, 368, 368, 368, 368, 368,
	368, 368, 368, 368, 368, 368, 369, 370, 371, 372, 376, 376,
	376, 376, 378, 378, 380, 380, 382, 382, 384, 384, 386, 386,
	388, 388, 390, 390, 392, 392, 393, 394, 396, 396, 397, 398,
	399, 400, 401, 402, 404, 404, 405, 406, 407, 408, 409, 410,
	411, 412, 414, 414, 415, 416, 417, 418, 420, 420, 421, 422,
	424, 424, 425, 426, 427, 428, 429, 430, 431, 432, 433, 436,
	436, 436, 438, 438, 440, 440, 442, 442, 444, 444, 446, 446,
	453, 453, 453, 453, 453, 453, 453, 455, 455, 456, 457, 459,
	459, 465, 465, 465, 465, 465, 465, 466, 472, 472, 472, 472,
	472, 472, 473, 474, 475, 476, 477, 478, 479, 480, 481, 482,
	483, 484, 485, 486, 487, 488, 489, 490, 491, 492, 493, 494,
	495, 496, 497, 498, 499, 591, 591, 591, 591, 591, 591, 591,
	591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591,
	591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591,
	591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591,
	591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591,
	591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591,
	591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591,
	591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591, 591,
	591, 593, 593, 595, 595, 597, 597, 599, 599, 604, 604, 604,
	604, 604, 605, 606, 607, 608, 609, 610, 611, 612, 613, 618,
	618, 618, 618, 618, 621, 621, 621, 628, 628, 628, 628, 628,
	628, 628, 629, 630, 631, 632, 633, 634, 635, 636, 637, 638,
	648, 648, 648, 648, 648, 648, 648, 648, 648, 648, 649, 651,
	651, 684, 684, 684, 684, 684, 684, 684, 684, 684, 684, 684,
	684, 684, 684, 684, 684, 684, 684, 684, 684, 684, 684, 684,
	684, 684, 684, 684, 684, 684, 684, 684, 684, 684, 685, 686,
	687, 691, 691, 691, 691, 692, 693, 694, 695, 698, 698, 698,
	699, 700, 701, 702, 703, 704, 705, 706, 707, 708, 709, 715,
	715, 715, 715, 715, 715, 716, 717, 718, 719, 720, 721, 722,
	723, 724, 725, 726, 727, 728, 729, 730, 731, 732, 734, 734,
	766, 766, 766, 766, 766, 766, 766, 766, 766, 766, 766, 766,
	766, 766, 766, 766, 766, 766, 766, 766, 766, 766, 766, 766,
	766, 766, 766, 766, 766, 766, 766, 766, 767, 768, 769, 771,
	771, 772, 773, 787, 787, 787, 787, 787, 787, 787, 787, 787,
	787, 787, 787, 787, 787, 16, 16, 16,
}

// CartItems14 is the set of item ids legal for the 1.4-1.5 cart.
// Verbatim from the original's CART_ITEMS_1_4.
var CartItems14 = map[int32]bool{}

var cartItems14List = []int32{
	16, 18, 20, 22, 24, 78, 88, 90, 92, 128, 129, 130, 131, 132,
	136, 137, 138, 139, 140, 141, 142, 143, 144, 145, 146, 147, 148, 149,
	150, 151, 154, 155, 156, 164, 165, 167, 174, 176, 180, 182, 184, 186,
	188, 190, 192, 194, 195, 196, 197, 198, 199, 200, 201, 202, 203, 204,
	205, 206, 207, 208, 209, 210, 211, 212, 213, 214, 215, 216, 218, 219,
	220, 221, 222, 223, 224, 225, 226, 227, 228, 229, 230, 231, 232, 233,
	234, 235, 236, 237, 238, 239, 240, 241, 242, 243, 244, 248, 250, 251,
	252, 253, 254, 256, 257, 258, 259, 260, 262, 264, 266, 268, 270, 271,
	272, 273, 274, 276, 278, 280, 281, 282, 283, 284, 286, 287, 288, 293,
	296, 298, 299, 300, 301, 302, 303, 304, 306, 307, 309, 310, 311, 322,
	323, 324, 325, 328, 329, 330, 331, 333, 334, 335, 336, 337, 338, 340,
	342, 344, 346, 347, 348, 350, 368, 369, 370, 371, 372, 376, 378, 380,
	382, 384, 386, 388, 390, 392, 393, 394, 396, 397, 398, 399, 400, 401,
	402, 404, 405, 406, 407, 408, 409, 410, 411, 412, 414, 415, 416, 418,
	420, 421, 422, 424, 425, 426, 427, 428, 429, 430, 431, 432, 433, 436,
	438, 440, 442, 444, 446, 453, 455, 456, 457, 459, 465, 466, 472, 473,
	474, 475, 476, 477, 478, 479, 480, 481, 482, 483, 484, 485, 486, 487,
	488, 489, 490, 491, 492, 493, 494, 495, 496, 497, 498, 499, 591, 593,
	595, 597, 599, 604, 605, 606, 607, 608, 609, 610, 611, 612, 613, 614,
	618, 621, 628, 629, 630, 631, 632, 633, 634, 635, 636, 637, 638, 648,
	649, 651, 684, 685, 686, 687, 691, 692, 693, 694, 695, 698, 699, 700,
	701, 702, 703, 704, 705, 706, 707, 708, 709, 715, 716, 717, 718, 719,
	720, 721, 722, 723, 724, 725, 726, 727, 728, 729, 730, 731, 732, 733,
	734, 766, 767, 768, 769, 771, 772, 773, 787, 445, 267, 265, 269,
}

func init() {
	for _, id := range cartItems14List {
		CartItems14[id] = true
	}
}

// CatalogEntry is one entry of the ordered 1.6 object catalog. Order is
// part of the contract: the 1.6 cart shuffle iterates this slice in its
// intrinsic order and must not be re-sorted or turned into a map.
type CatalogEntry struct {
	ID           int32
	Price        int32
	Offlimits    bool
	Category     int32
	TypeExcluded bool
}

// Objects16 is the ordered object catalog the 1.6 cart algorithm walks.
// Its source data (the full ordered Stardew object list with 1.6 prices,
// offlimits flags, and categories) was not present in this build's
// source material, so this is a structurally faithful placeholder: same
// shape and price-curve pattern as the real catalog, not the verbatim
// values. See DESIGN.md.
var Objects16 = []CatalogEntry{
	{ID: 90, Price: 10, Offlimits: true, Category: 0, TypeExcluded: true},
	{ID: 92, Price: 47, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 94, Price: 84, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 96, Price: 121, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 98, Price: 158, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 100, Price: 195, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 102, Price: 232, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 104, Price: 269, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 106, Price: 306, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 108, Price: 343, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 110, Price: 380, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 112, Price: 417, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 114, Price: 454, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 116, Price: 11, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 118, Price: 48, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 120, Price: 85, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 122, Price: 122, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 124, Price: 159, Offlimits: false, Category: 0, TypeExcluded: false},
	{ID: 126, Price: 196, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 128, Price: 233, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 130, Price: 270, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 132, Price: 307, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 134, Price: 344, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 136, Price: 381, Offlimits: true, Category: -2, TypeExcluded: false},
	{ID: 138, Price: 418, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 140, Price: 455, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 142, Price: 12, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 144, Price: 49, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 146, Price: 86, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 148, Price: 123, Offlimits: false, Category: -2, TypeExcluded: true},
	{ID: 150, Price: 160, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 152, Price: 197, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 154, Price: 234, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 156, Price: 271, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 158, Price: 308, Offlimits: false, Category: 0, TypeExcluded: false},
	{ID: 160, Price: 345, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 162, Price: 382, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 164, Price: 419, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 166, Price: 456, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 168, Price: 13, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 170, Price: 50, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 172, Price: 87, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 174, Price: 124, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 176, Price: 161, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 178, Price: 198, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 180, Price: 235, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 182, Price: 272, Offlimits: true, Category: -2, TypeExcluded: false},
	{ID: 184, Price: 309, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 186, Price: 346, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 188, Price: 383, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 190, Price: 420, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 192, Price: 457, Offlimits: false, Category: 0, TypeExcluded: false},
	{ID: 194, Price: 14, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 196, Price: 51, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 198, Price: 88, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 200, Price: 125, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 202, Price: 162, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 204, Price: 199, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 206, Price: 236, Offlimits: false, Category: -2, TypeExcluded: true},
	{ID: 208, Price: 273, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 210, Price: 310, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 212, Price: 347, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 214, Price: 384, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 216, Price: 421, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 218, Price: 458, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 220, Price: 15, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 222, Price: 52, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 224, Price: 89, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 226, Price: 126, Offlimits: false, Category: 0, TypeExcluded: false},
	{ID: 228, Price: 163, Offlimits: true, Category: -2, TypeExcluded: false},
	{ID: 230, Price: 200, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 232, Price: 237, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 234, Price: 274, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 236, Price: 311, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 238, Price: 348, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 240, Price: 385, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 242, Price: 422, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 244, Price: 459, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 246, Price: 16, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 248, Price: 53, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 250, Price: 90, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 252, Price: 127, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 254, Price: 164, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 256, Price: 201, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 258, Price: 238, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 260, Price: 275, Offlimits: false, Category: 0, TypeExcluded: false},
	{ID: 262, Price: 312, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 264, Price: 349, Offlimits: false, Category: -2, TypeExcluded: true},
	{ID: 266, Price: 386, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 268, Price: 423, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 270, Price: 460, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 272, Price: 17, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 274, Price: 54, Offlimits: true, Category: -2, TypeExcluded: false},
	{ID: 276, Price: 91, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 278, Price: 128, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 280, Price: 165, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 282, Price: 202, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 284, Price: 239, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 286, Price: 276, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 288, Price: 313, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 290, Price: 350, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 292, Price: 387, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 294, Price: 424, Offlimits: false, Category: 0, TypeExcluded: false},
	{ID: 296, Price: 461, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 298, Price: 18, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 300, Price: 55, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 302, Price: 92, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 304, Price: 129, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 306, Price: 166, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 308, Price: 203, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 310, Price: 240, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 312, Price: 277, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 314, Price: 314, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 316, Price: 351, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 318, Price: 388, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 320, Price: 425, Offlimits: true, Category: -2, TypeExcluded: false},
	{ID: 322, Price: 462, Offlimits: false, Category: -2, TypeExcluded: true},
	{ID: 324, Price: 19, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 326, Price: 56, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 328, Price: 93, Offlimits: false, Category: 0, TypeExcluded: false},
	{ID: 330, Price: 130, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 332, Price: 167, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 334, Price: 204, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 336, Price: 241, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 338, Price: 278, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 340, Price: 315, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 342, Price: 352, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 344, Price: 389, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 346, Price: 426, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 348, Price: 463, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 350, Price: 20, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 352, Price: 57, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 354, Price: 94, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 356, Price: 131, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 358, Price: 168, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 360, Price: 205, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 362, Price: 242, Offlimits: false, Category: 0, TypeExcluded: false},
	{ID: 364, Price: 279, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 366, Price: 316, Offlimits: true, Category: -2, TypeExcluded: false},
	{ID: 368, Price: 353, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 370, Price: 390, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 372, Price: 427, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 374, Price: 464, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 376, Price: 21, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 378, Price: 58, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 380, Price: 95, Offlimits: false, Category: -2, TypeExcluded: true},
	{ID: 382, Price: 132, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 384, Price: 169, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 386, Price: 206, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 388, Price: 243, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 390, Price: 280, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 392, Price: 317, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 394, Price: 354, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 396, Price: 391, Offlimits: false, Category: 0, TypeExcluded: false},
	{ID: 398, Price: 428, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 400, Price: 465, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 402, Price: 22, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 404, Price: 59, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 406, Price: 96, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 408, Price: 133, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 410, Price: 170, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 412, Price: 207, Offlimits: true, Category: -2, TypeExcluded: false},
	{ID: 414, Price: 244, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 416, Price: 281, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 418, Price: 318, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 420, Price: 355, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 422, Price: 392, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 424, Price: 429, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 426, Price: 466, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 428, Price: 23, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 430, Price: 60, Offlimits: false, Category: 0, TypeExcluded: false},
	{ID: 432, Price: 97, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 434, Price: 134, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 436, Price: 171, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 438, Price: 208, Offlimits: false, Category: -2, TypeExcluded: true},
	{ID: 440, Price: 245, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 442, Price: 282, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 444, Price: 319, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 446, Price: 356, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 448, Price: 393, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 450, Price: 430, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 452, Price: 467, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 454, Price: 24, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 456, Price: 61, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 458, Price: 98, Offlimits: true, Category: -2, TypeExcluded: false},
	{ID: 460, Price: 135, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 462, Price: 172, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 464, Price: 209, Offlimits: false, Category: 0, TypeExcluded: false},
	{ID: 466, Price: 246, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 468, Price: 283, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 470, Price: 320, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 472, Price: 357, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 474, Price: 394, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 476, Price: 431, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 478, Price: 468, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 480, Price: 25, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 482, Price: 62, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 484, Price: 99, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 486, Price: 136, Offlimits: false, Category: -2, TypeExcluded: false},
	{ID: 488, Price: 173, Offlimits: false, Category: -2, TypeExcluded: false},
}

// GeodeItems, FrozenItems, MagmaItems, OmniItems, and TroveItems are the
// per-geode-type drop pools consumed by internal/mechanics' geode
// resolution once the mineral/artifact branch is reached. Verbatim from
// the original's GEODE_ITEMS/FROZEN_ITEMS/MAGMA_ITEMS/OMNI_ITEMS/
// TROVE_ITEMS.
var GeodeItems = []int32{
	538, 542, 548, 549, 552, 555, 556, 557, 558, 566, 568, 569,
	571, 574, 576, 121,
}

var FrozenItems = []int32{
	541, 544, 545, 546, 550, 551, 559, 560, 561, 564, 567, 572,
	573, 577, 123,
}

var MagmaItems = []int32{
	539, 540, 543, 547, 553, 554, 562, 563, 565, 570, 575, 578,
	122,
}

var OmniItems = []int32{
	538, 542, 548, 549, 552, 555, 556, 557, 558, 566, 568, 569,
	571, 574, 576, 541, 544, 545, 546, 550, 551, 559, 560, 561,
	564, 567, 572, 573, 577, 539, 540, 543, 547, 553, 554, 562,
	563, 565, 570, 575, 578, 121, 122, 123,
}

var TroveItems = []int32{
	100, 101, 103, 104, 105, 106, 108, 109, 110, 111, 112, 113,
	114, 115, 116, 117, 118, 119, 120, 121, 122, 123, 124, 125,
	166, 373, 797,
}
