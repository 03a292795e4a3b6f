// Package naming provides the case conversions used to derive component,
// operation and tag names from annotation text.
//
// [ToCamelCase] splits its input into words the way annotation tooling does
// (separators, lower-to-upper transitions, letter/digit boundaries and
// acronym ends) so "get user", "GetUser" and "get_user" all become "getUser".
// [ToTagTitle] title-cases each whitespace-separated word of a group name.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
