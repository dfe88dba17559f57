// Package clipboard writes text to the system clipboard. It is used for
// yanking route paths out of the shell so they can be pasted into a browser
// hitting the same CRM.
package clipboard
