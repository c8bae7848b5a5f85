// This file is part of ratecounter.
//
// ratecounter is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ratecounter is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ratecounter.  If not, see <https://www.gnu.org/licenses/>.

package performance

// CalcRate takes the the number of cycles and duration (in seconds) and
// returns the cycles-per-second and the accuracy of that value as a
// percentage of the target rate. If the target is zero or less then the
// accuracy is zero.
func CalcRate(numCycles int, duration float64, target float64) (rate float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	rate = float64(numCycles) / duration
	if target > 0 {
		accuracy = 100 * rate / target
	}
	return rate, accuracy
}
