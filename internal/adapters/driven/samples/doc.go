// Package samples locates the bundled sample phone books and follows
// record files for changes.
//
// Sample files hold one "phoneNumber name" record per line and are named
// phoneBook-small.txt, phoneBook-medium.txt and phoneBook-large.txt.
package samples
