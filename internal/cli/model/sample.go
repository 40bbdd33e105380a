package model

// SampleStatement is shown when no problem file is given.
const SampleStatement = `# Pair Sum

Given an array of integers **nums** and an integer **target**, return the
indices of the two numbers that add up to target.

Each input has exactly one solution and the same element may not be used
twice.

## Input

- The first line holds n and target.
- The second line holds n integers.

## Output

Print the two indices, separated by a space, in increasing order.

## Example

| Input | Output |
|---|---|
| 4 9 / 2 7 11 15 | 0 1 |
| 3 6 / 3 2 4 | 1 2 |

## Limits

- 2 ≤ n ≤ 10⁴
- Time limit: 1 s
- Memory limit: 256 MB
`

const sampleSolution = `package main

import "fmt"

func main() {
	var n, target int
	fmt.Scan(&n, &target)
	nums := make([]int, n)
	for i := range nums {
		fmt.Scan(&nums[i])
	}

	seen := map[int]int{}
	for i, v := range nums {
		if j, ok := seen[target-v]; ok {
			fmt.Println(j, i)
			return
		}
		seen[v] = i
	}
}
`
