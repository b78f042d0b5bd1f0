/*
Package retype checks a typed reproduction of a sample text and reports
what the typist left out or added. Comparison works on tokens, not on
characters. A token is one of

  - a word, i.e. a run of characters that are neither ' ' (U+0020) nor one
    of the punctuation marks ". , ! ? ; :"
  - a single space
  - a single punctuation mark

Tabs and line breaks are word characters. So

	Hello,  world!

is the token sequence "Hello" "," " " " " "world" "!". Tokenization is
lossless, joining the tokens gives back the text.

# Aligning Sample and User Text

Sample and user tokens are aligned with a longest common subsequence. Each
step of the alignment either matches a sample token with an equal user
token, marks a sample token as missing or marks a user token as extra. The
user text

	Hello world

against the sample "Hello, world" results in

	match "Hello", missing ",", match " ", match "world"

When more than one alignment of maximal length exists, the result is
deterministic. The alignment is traced back from the end and takes an extra
step whenever that keeps the match count maximal. So between two matches
missing steps usually come before extra steps.

Missing or extra spaces at the very end are dropped from the alignment,
typists rarely care about a blank behind the last word.

# Errors and the Whitelist

Every missing and extra step is a typing error unless its token is on the
whitelist. Whitelisted sample tokens are rendered as such, e.g. to mark
placeholders like "[kw]" that the typist is not expected to type.
Practice sessions always whitelist "[kw]" and "[KW]".

Errors are reported with a logical position that counts only non-space
tokens of both texts. E.g. typing "Hello word" for "Hello world" gives

	Missing token at position 2: expected "world".
	Extra token at position 3: got "word".

Optionally, pairs of missing and extra words that are close in edit
distance are reported as typos.
*/
package retype
