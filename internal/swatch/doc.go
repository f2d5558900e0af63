// Package swatch renders color previews as base64-encoded PNG images.
//
// A swatch shows a background color with a centered block of foreground
// color, which is how a text color looks on a background at a glance. A
// strip lays several colors side by side, one square cell each.
//
// Inputs may be any image/color.Color. They are converted to opaque RGB
// first (premultiplied alpha is undone and then dropped), so a half
// transparent red renders as full red. Fully transparent inputs are
// rejected.
package swatch
