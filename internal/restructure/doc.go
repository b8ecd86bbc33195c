// Package restructure migrates static blog posts from the layout where the
// wrapper div encloses the main-content element to the layout where
// main-content encloses the wrapper and the post sidebar sits beside it.
//
// The migration is textual: three ordered regular-expression substitutions
// are applied to each post and the file is rewritten in place. Posts named
// in the exclusion set and posts that already carry the new layout are left
// untouched.
package restructure
