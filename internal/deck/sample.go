package deck

// FallbackCSV is the built-in sample deck used when the configured source
// cannot be read.
const FallbackCSV = `Question,Answer
Apple,りんご
Cat,ネコ
Dog,いぬ
Water,みず
Book,ほん
Train,でんしゃ
Coffee,コーヒー
Tokyo,東京
Good morning,おはよう
Thank you,ありがとう
`
