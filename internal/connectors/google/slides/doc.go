// Package slides reads the template slide and appends merged slides
// through the Google Slides API.
//
// The Slides API cannot copy a slide between presentations. When the
// template lives in the target presentation the slide is duplicated and
// its placeholders replaced in place. Otherwise the slide is rebuilt in
// the target from the template's shapes, text styles, images and
// background, with the substituted text already filled in.
package slides
