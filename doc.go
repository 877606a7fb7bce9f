// Package pageshell renders a page shell: a header shown on every path followed by at most one page
// picked from an ordered route table. Routes are matched literally, either exactly or by prefix, and
// the first matching route wins.
//
// A shell is an [http.Handler] and can be mounted on an [http.ServeMux] or a chi router through the
// [Router] interface.
package pageshell
