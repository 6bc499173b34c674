/*
Package hexcodec converts between raw bytes and the lowercase hex text stored in payload files.

Encoded text has two lowercase digits per byte, with no separators and no prefix.
Decoding is strict by default: an odd number of characters is an error rather than silently dropping the last character.
Use TruncateOddLength to get the legacy truncating behavior when reading files produced by older tools.

Payload files hold a single line of hex text, see ReadLine and WriteLine.
*/
package hexcodec
