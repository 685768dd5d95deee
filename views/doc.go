// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views renders the HTML pages from templates embedded in the binary.

Each page template defines "title" and "content" and is rendered through the
shared layout:

	r, err := views.New()
	err = r.Render(w, http.StatusOK, views.PageUsers, views.UsersPage{...})

Templates may use "comma" to group digits (1,250,000) and "optional" to
print a nullable integer.

Static assets are served by Static(), mounted at /static/.
*/
package views
