/*
Package endpoints defines the HTTP surface of the journal: the public list
and detail pages, the login form, and the authenticated create and edit
operations. Pages are rendered from embedded HTML templates; the edit
endpoints speak JSON.
*/
package endpoints
